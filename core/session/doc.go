// Package session owns the client-side authentication lifecycle: token
// acquisition, decode, persistence, expiry handling, and the state the route
// guard reads on every navigation.
//
// # Model
//
// The Store is the single owner of the Session. Everything else (the route
// guard, feature clients, the realtime channel) reads value snapshots via
// Current or reacts to transitions via Subscribe; the only mutation paths are
// Restore, Login, Logout and Revalidate.
//
//	creds := credentials.NewFile(path)
//	gw, _ := gateway.New(gateway.Config{BaseURL: "https://api.example.com"})
//	store := session.New(creds, gw)
//
//	// Process start: pick up a persisted credential, if any.
//	sess := store.Restore(ctx)
//
//	// Interactive login.
//	sess, err := store.Login(ctx, username, password)
//	var authErr *gateway.AuthError
//	if errors.As(err, &authErr) {
//		// authErr.Reason is user-presentable
//	}
//
// # Failure semantics
//
// Nothing in this package is fatal. Storage and decode failures degrade
// silently to the anonymous state; only Login surfaces errors, and only as
// *gateway.AuthError. Every failure path leaves the store in a well-defined
// state, never an indeterminate one.
//
// # Concurrency
//
// State transitions are linearizable: a mutex serializes every
// read-modify-write, including access to the persisted credential record. An
// in-flight Login checks, under the lock, that it is still the most recent
// operation before applying its result; a Logout issued while a Login is on
// the wire therefore wins, and the stale result is discarded with
// ErrSuperseded.
package session
