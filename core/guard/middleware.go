package guard

import (
	"net/http"
)

// Middleware applies the guard's decision to an HTTP handler serving views,
// redirecting unauthorized navigations to the login view with 303 See Other.
// The decision is made per request on the URL path.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.Authorize(r.URL.Path)
		if !d.Allow {
			http.Redirect(w, r, d.RedirectTo, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
