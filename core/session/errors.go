package session

import "errors"

var (
	// ErrSuperseded is returned by Login when its result arrived after an
	// intervening Logout or newer Login. The result is discarded; a stale
	// successful login must never silently re-authenticate a user who
	// explicitly logged out.
	ErrSuperseded = errors.New("login superseded by a newer session operation")
)
