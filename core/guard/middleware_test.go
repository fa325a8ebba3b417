package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bithunter/bithunter-go/core/guard"
	"github.com/bithunter/bithunter-go/core/session"
)

func TestMiddleware_RedirectsAnonymous(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src)

	var reached bool
	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trading", nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, guard.DefaultLoginView, rec.Header().Get("Location"))
}

func TestMiddleware_PassesAuthenticated(t *testing.T) {
	src := &stubSource{sess: authenticated()}
	g := guard.New(src)

	var reached bool
	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trading", nil))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_PublicViewPassesAnonymous(t *testing.T) {
	src := &stubSource{sess: session.Session{Status: session.StatusAnonymous}}
	g := guard.New(src)

	var reached bool
	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.True(t, reached)
}
