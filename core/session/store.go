package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bithunter/bithunter-go/core/credentials"
	"github.com/bithunter/bithunter-go/core/gateway"
	"github.com/bithunter/bithunter-go/core/logger"
	"github.com/bithunter/bithunter-go/pkg/authtoken"
)

// Authenticator is the slice of the API gateway the store depends on.
// *gateway.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (gateway.LoginResult, error)
}

// Store exclusively owns the session. Views and the route guard hold
// references to the store and read snapshots; Login, Logout, Restore and
// Revalidate are the only mutation paths.
//
// All state transitions are serialized by an internal mutex, and a
// generation counter suppresses stale login results: a Login whose network
// call resolves after an intervening Logout (or newer Login) discards its
// result instead of re-authenticating.
type Store struct {
	auth  Authenticator
	creds credentials.Store
	clock func() time.Time
	log   *slog.Logger

	mu        sync.Mutex
	cur       Session
	gen       uint64
	listeners map[uuid.UUID]func(Session)
}

// New creates a session store in the anonymous state. Call Restore to pick
// up a persisted credential from a previous run.
func New(creds credentials.Store, auth Authenticator, opts ...Option) *Store {
	s := &Store{
		auth:      auth,
		creds:     creds,
		clock:     time.Now,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		cur:       anonymous(),
		listeners: make(map[uuid.UUID]func(Session)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns a snapshot of the present state. It never blocks on the
// network and never fails.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// BearerToken implements gateway.Source: protected requests carry the token
// only while the session is authenticated.
func (s *Store) BearerToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur.Status != StatusAuthenticated {
		return "", false
	}
	return s.cur.Token, true
}

// Subscribe registers a listener invoked on every state transition. The
// returned function removes the listener. Listeners run outside the store's
// lock and must not block; ordering between listeners is unspecified.
func (s *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	id := uuid.New()

	s.mu.Lock()
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Restore loads the persisted credential record, if any, and derives the
// session from it. A missing, undecodable, or already-expired record degrades
// to the anonymous state and clears storage; Restore never fails.
func (s *Store) Restore(ctx context.Context) Session {
	s.mu.Lock()

	token, err := s.creds.Load(ctx)
	if err != nil {
		s.gen++
		ls, cur := s.transitionLocked(anonymous())
		s.mu.Unlock()
		if !errors.Is(err, credentials.ErrNotFound) {
			s.log.WarnContext(ctx, "unreadable credential record",
				logger.Component("session"), logger.Error(err))
		}
		s.notify(ls, cur)
		return cur
	}

	id, derr := authtoken.Decode(token)
	if derr != nil || id.ExpiredAt(s.clock()) {
		// A corrupt or stale record is useless; delete it so the next start
		// does not repeat the work.
		if err := s.creds.Delete(ctx); err != nil {
			s.log.WarnContext(ctx, "failed to clear credential record",
				logger.Component("session"), logger.Error(err))
		}
		s.gen++
		ls, cur := s.transitionLocked(anonymous())
		s.mu.Unlock()
		if derr != nil {
			s.log.DebugContext(ctx, "discarding undecodable credential",
				logger.Component("session"), logger.Error(derr))
		}
		s.notify(ls, cur)
		return cur
	}

	s.gen++
	ls, cur := s.transitionLocked(Session{
		Token:    token,
		Identity: &id,
		Status:   StatusAuthenticated,
	})
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session restored",
		logger.Component("session"), logger.ExpiresAt(id.ExpiresAt))
	s.notify(ls, cur)
	return cur
}

// Login authenticates against the backend. On success the credential is
// persisted and the session transitions to authenticated. On failure the
// session stays anonymous and the error is a *gateway.AuthError carrying a
// user-presentable reason.
//
// A result that arrives after an intervening Logout or newer Login is
// discarded and reported as ErrSuperseded.
func (s *Store) Login(ctx context.Context, username, password string) (Session, error) {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return s.Current(), err
	}

	id, derr := authtoken.Decode(res.AccessToken)
	if derr != nil {
		return s.Current(), gateway.NewAuthError(gateway.ReasonMalformedResponse, derr)
	}
	if id.ExpiredAt(s.clock()) {
		return s.Current(), gateway.NewAuthError(gateway.ReasonMalformedResponse,
			errors.New("issued token is already expired"))
	}

	s.mu.Lock()
	if s.gen != gen {
		cur := s.cur
		s.mu.Unlock()
		s.log.InfoContext(ctx, "discarding stale login result",
			logger.Component("session"))
		return cur, ErrSuperseded
	}

	if err := s.creds.Save(ctx, res.AccessToken); err != nil {
		// The in-memory session is still good; it just will not survive a
		// restart.
		s.log.WarnContext(ctx, "failed to persist credential record",
			logger.Component("session"), logger.Error(err))
	}

	s.gen++
	ls, cur := s.transitionLocked(Session{
		Token:    res.AccessToken,
		Identity: &id,
		Status:   StatusAuthenticated,
	})
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session authenticated",
		logger.Component("session"), logger.ExpiresAt(id.ExpiresAt))
	s.notify(ls, cur)
	return cur, nil
}

// Logout unconditionally clears the session and deletes the credential
// record. Logging out an already-anonymous session is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	// Bump even when anonymous so an in-flight login cannot apply its result.
	s.gen++
	if err := s.creds.Delete(ctx); err != nil {
		s.log.WarnContext(ctx, "failed to delete credential record",
			logger.Component("session"), logger.Error(err))
	}
	ls, cur := s.transitionLocked(anonymous())
	s.mu.Unlock()

	if ls != nil {
		s.log.InfoContext(ctx, "session cleared",
			logger.Component("session"), logger.Status(cur.Status.String()))
	}
	s.notify(ls, cur)
}

// Revalidate re-checks the held credential's expiry against the clock. An
// expired credential is treated exactly like a logout, except subscribers
// receive a StatusExpired snapshot so they can tell proactive expiry from an
// explicit logout. Safe to call at any time, including concurrently with
// Login and Logout.
func (s *Store) Revalidate(ctx context.Context) Session {
	s.mu.Lock()

	if s.cur.Status != StatusAuthenticated || !s.cur.Identity.ExpiredAt(s.clock()) {
		cur := s.cur
		s.mu.Unlock()
		return cur
	}

	s.gen++
	if err := s.creds.Delete(ctx); err != nil {
		s.log.WarnContext(ctx, "failed to delete credential record",
			logger.Component("session"), logger.Error(err))
	}
	expiresAt := s.cur.Identity.ExpiresAt
	s.cur = anonymous()
	ls := s.listenersLocked()
	cur := s.cur
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session expired",
		logger.Component("session"), logger.ExpiresAt(expiresAt))
	s.notify(ls, Session{Status: StatusExpired})
	return cur
}

// AutoRevalidate re-checks expiry every interval until ctx is done. Run it in
// its own goroutine; it exists so an idle client drops an expired session
// before the user's next navigation rather than after it.
func (s *Store) AutoRevalidate(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Revalidate(ctx)
		}
	}
}

// transitionLocked replaces the current state and returns the listeners to
// notify, or nil when the state did not actually change. Callers must hold
// the mutex and invoke notify after releasing it.
func (s *Store) transitionLocked(next Session) ([]func(Session), Session) {
	if s.cur.Status == next.Status && s.cur.Token == next.Token {
		s.cur = next
		return nil, next
	}
	s.cur = next
	return s.listenersLocked(), next
}

func (s *Store) listenersLocked() []func(Session) {
	if len(s.listeners) == 0 {
		return nil
	}
	ls := make([]func(Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		ls = append(ls, fn)
	}
	return ls
}

func (s *Store) notify(listeners []func(Session), snap Session) {
	for _, fn := range listeners {
		fn(snap)
	}
}
