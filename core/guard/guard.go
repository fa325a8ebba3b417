package guard

import (
	"github.com/bithunter/bithunter-go/core/session"
)

// DefaultLoginView is where unauthorized navigations are redirected.
const DefaultLoginView = "/login"

// defaultPublicViews never require authentication.
var defaultPublicViews = []string{"/login", "/register"}

// SessionSource is the read-only slice of the session store the guard needs.
// *session.Store satisfies it.
type SessionSource interface {
	Current() session.Session
}

// Decision is the outcome of an authorization check.
type Decision struct {
	// Allow reports whether the requested view may be rendered.
	Allow bool

	// RedirectTo is the view to navigate to instead; set only when Allow is
	// false.
	RedirectTo string
}

// Guard gates navigation on the session store's current state. It holds a
// read-only reference and performs no mutation and no side effects.
type Guard struct {
	sessions  SessionSource
	loginView string
	public    map[string]struct{}
}

// Option is a functional option for configuring the guard.
type Option func(*Guard)

// WithLoginView changes the redirect target for unauthorized navigations.
// The login view is implicitly public.
func WithLoginView(view string) Option {
	return func(g *Guard) {
		if view != "" {
			g.loginView = view
		}
	}
}

// WithPublicViews adds views reachable without authentication, on top of the
// defaults.
func WithPublicViews(views ...string) Option {
	return func(g *Guard) {
		for _, v := range views {
			g.public[v] = struct{}{}
		}
	}
}

// New creates a route guard over the given session source.
func New(sessions SessionSource, opts ...Option) *Guard {
	g := &Guard{
		sessions:  sessions,
		loginView: DefaultLoginView,
		public:    make(map[string]struct{}, len(defaultPublicViews)),
	}
	for _, v := range defaultPublicViews {
		g.public[v] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}
	g.public[g.loginView] = struct{}{}
	return g
}

// Authorize decides whether the requested view may be rendered. The session
// state is read fresh on every call.
func (g *Guard) Authorize(view string) Decision {
	if _, ok := g.public[view]; ok {
		return Decision{Allow: true}
	}
	if g.sessions.Current().IsAuthenticated() {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: g.loginView}
}
