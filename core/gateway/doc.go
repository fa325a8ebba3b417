// Package gateway is the client's adapter to the BitHunter REST API.
//
// The backend is an opaque collaborator; this package only knows the account
// endpoints the session lifecycle depends on and the rule for decorating
// outbound requests with the current bearer credential.
//
// # Endpoints
//
//   - POST /api/accounts/login/    → {"access": "<token>", "user": {...}}
//   - POST /api/accounts/register/ → 201 on success
//   - GET  /api/accounts/profile/  → the signed-in user's profile
//
// # Error mapping
//
// Login failures are reported as *AuthError with a user-presentable reason:
// HTTP 401 maps to ReasonInvalidCredentials, transport-level failures to
// ReasonNetworkUnavailable, and any other non-2xx status or unparseable body
// to ReasonMalformedResponse.
//
// # Request decoration
//
// Transport wraps an http.RoundTripper and attaches "Authorization: Bearer"
// from a Source. Requests made while the session is not authenticated carry
// no token at all.
package gateway
