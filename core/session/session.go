package session

import (
	"github.com/bithunter/bithunter-go/pkg/authtoken"
)

// Status describes the session's authentication state.
type Status uint8

const (
	// StatusAnonymous means no valid credential is held.
	StatusAnonymous Status = iota
	// StatusAuthenticated means a decodable credential with a future expiry is held.
	StatusAuthenticated
	// StatusExpired marks the snapshot delivered to subscribers when
	// revalidation detects that the held credential's expiry has passed.
	// It is a transition signal: Current never reports it, the store comes
	// to rest at StatusAnonymous immediately.
	StatusExpired
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusExpired:
		return "expired"
	default:
		return "anonymous"
	}
}

// Session is a point-in-time snapshot of the authentication state. Snapshots
// are values; holding one confers no ability to mutate the store.
//
// Invariant: Status == StatusAuthenticated iff Token is non-empty, the token
// decoded successfully, and its expiry was in the future at the last check.
// Identity is non-nil iff the session is authenticated.
type Session struct {
	// Token is the opaque bearer credential, empty while anonymous.
	Token string

	// Identity holds the claims decoded from Token, nil while anonymous.
	Identity *authtoken.Identity

	Status Status
}

// IsAuthenticated reports whether the session holds a valid credential.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// IsAnonymous reports whether the session holds no credential.
func (s Session) IsAnonymous() bool {
	return s.Status == StatusAnonymous
}

// anonymous is the well-defined resting state every failure path degrades to.
func anonymous() Session {
	return Session{Status: StatusAnonymous}
}
