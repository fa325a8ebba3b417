package gateway

import (
	"errors"
	"fmt"
)

// Reason classifies why an authentication attempt failed, for presentation to
// the user.
type Reason string

const (
	// ReasonInvalidCredentials means the backend rejected the username/password pair.
	ReasonInvalidCredentials Reason = "invalid_credentials"
	// ReasonNetworkUnavailable means the login endpoint could not be reached.
	ReasonNetworkUnavailable Reason = "network_unavailable"
	// ReasonMalformedResponse means the backend answered with an unexpected
	// status or a body the client could not interpret.
	ReasonMalformedResponse Reason = "malformed_response"
)

// AuthError is returned by Login when authentication fails. The session it
// belongs to stays anonymous.
type AuthError struct {
	Reason Reason
	cause  error
}

// NewAuthError wraps cause with a classified reason. The cause may be nil.
func NewAuthError(reason Reason, cause error) *AuthError {
	return &AuthError{Reason: reason, cause: cause}
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("authentication failed (%s): %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("authentication failed (%s)", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

var (
	// ErrRegistrationFailed is returned when the register endpoint rejects the request.
	ErrRegistrationFailed = errors.New("registration failed")
	// ErrProfileFetchFailed is returned when the profile endpoint cannot be read.
	ErrProfileFetchFailed = errors.New("failed to fetch profile")
)
