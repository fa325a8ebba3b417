package guard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bithunter/bithunter-go/core/guard"
	"github.com/bithunter/bithunter-go/core/session"
	"github.com/bithunter/bithunter-go/pkg/authtoken"
)

// stubSource returns a scripted session snapshot, mutable between calls.
type stubSource struct {
	sess session.Session
}

func (s *stubSource) Current() session.Session { return s.sess }

func authenticated() session.Session {
	return session.Session{
		Token:    "tok",
		Identity: &authtoken.Identity{Subject: "42", ExpiresAt: time.Now().Add(time.Hour)},
		Status:   session.StatusAuthenticated,
	}
}

func TestAuthorize_ProtectedView(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src)

	d := g.Authorize("/trading")
	assert.False(t, d.Allow)
	assert.Equal(t, guard.DefaultLoginView, d.RedirectTo)

	src.sess = authenticated()
	d = g.Authorize("/trading")
	assert.True(t, d.Allow)
	assert.Empty(t, d.RedirectTo)
}

func TestAuthorize_PublicViewsAlwaysAllowed(t *testing.T) {
	g := guard.New(&stubSource{sess: session.Session{Status: session.StatusAnonymous}})

	for _, view := range []string{"/login", "/register"} {
		d := g.Authorize(view)
		assert.True(t, d.Allow, "view %s must be public", view)
	}
}

func TestAuthorize_AllProtectedViews(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src)

	views := []string{
		"/trading", "/analytics", "/alerts", "/dashboard",
		"/portfolio", "/news", "/settings", "/community", "/profile",
	}
	for _, view := range views {
		d := g.Authorize(view)
		assert.False(t, d.Allow, "view %s must require authentication", view)
		assert.Equal(t, guard.DefaultLoginView, d.RedirectTo)
	}
}

func TestAuthorize_ReadsStateFresh(t *testing.T) {
	// Status can change asynchronously between navigations; the guard must
	// not cache a previous decision.
	src := &stubSource{sess: authenticated()}
	g := guard.New(src)

	assert.True(t, g.Authorize("/trading").Allow)

	// Background revalidation noticed expiry.
	src.sess = session.Session{Status: session.StatusAnonymous}
	assert.False(t, g.Authorize("/trading").Allow)
}

func TestAuthorize_CustomLoginView(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src, guard.WithLoginView("/signin"))

	d := g.Authorize("/trading")
	assert.Equal(t, "/signin", d.RedirectTo)

	assert.True(t, g.Authorize("/signin").Allow, "login view itself must be public")
}

func TestAuthorize_ExtraPublicViews(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src, guard.WithPublicViews("/about", "/pricing"))

	assert.True(t, g.Authorize("/about").Allow)
	assert.True(t, g.Authorize("/pricing").Allow)
	assert.False(t, g.Authorize("/trading").Allow)
}
