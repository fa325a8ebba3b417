package authtoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be decoded into an identity.
// The condition is not retryable; callers should discard the token.
var ErrMalformedToken = errors.New("malformed access token")

// Identity holds the claims the client cares about, derived from the access
// token and never settable independently of it.
type Identity struct {
	// Subject is the stable account identifier from the "sub" claim.
	Subject string

	// Username is the display name from the "username" claim, may be empty.
	Username string

	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the identity's expiry is at or before the given time.
func (id Identity) ExpiredAt(now time.Time) bool {
	return !id.ExpiresAt.After(now)
}

// tokenClaims mirrors the claims segment of backend-issued access tokens.
type tokenClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses the claims segment of a three-part bearer token without
// verifying its signature. Missing subject or expiry claims count as malformed;
// temporal validity is intentionally NOT checked here, so callers can
// distinguish "unreadable" from "expired".
func Decode(token string) (Identity, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &tokenClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, errors.Join(ErrMalformedToken, err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Identity{}, ErrMalformedToken
	}

	id := Identity{
		Subject:   claims.Subject,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	return id, nil
}
