package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/bithunter/bithunter-go/core/gateway"
)

func mintToken(t *testing.T, subject, username string, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      subject,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}).SignedString([]byte("backend-signing-key-the-client-never-sees"))
	require.NoError(t, err)
	return token
}

// fakeClock is a controllable time source for expiry checks.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// authFunc adapts a function to the session.Authenticator interface.
type authFunc func(ctx context.Context, username, password string) (gateway.LoginResult, error)

func (f authFunc) Login(ctx context.Context, username, password string) (gateway.LoginResult, error) {
	return f(ctx, username, password)
}

// fakeAuth is a scriptable Authenticator. When gate is non-nil, Login blocks
// until the gate is closed, which lets tests interleave a Logout with an
// in-flight Login.
type fakeAuth struct {
	result  gateway.LoginResult
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (a *fakeAuth) Login(ctx context.Context, username, password string) (gateway.LoginResult, error) {
	if a.started != nil {
		close(a.started)
		a.started = nil
	}
	if a.gate != nil {
		select {
		case <-a.gate:
		case <-ctx.Done():
			return gateway.LoginResult{}, ctx.Err()
		}
	}
	if a.err != nil {
		return gateway.LoginResult{}, a.err
	}
	return a.result, nil
}
