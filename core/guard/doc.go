// Package guard decides, per navigation, whether a view may be rendered or
// the user must be sent to the login view.
//
// Authorize is a pure function of the session store's current status and the
// public-view set: {login, register} are always allowed, everything else
// requires an authenticated session. The status is read fresh on every call
// and never cached across navigations, because it can change asynchronously
// between them (a background revalidation detecting expiry, for example).
//
//	g := guard.New(store)
//	switch d := g.Authorize("/trading"); {
//	case d.Allow:
//		render()
//	default:
//		navigateTo(d.RedirectTo)
//	}
//
// Middleware adapts the same decision to locally served HTTP UIs.
package guard
