// Package authtoken decodes bearer access tokens issued by the BitHunter backend.
//
// The backend is the only party that verifies token signatures. This package
// deliberately parses the claims segment without any cryptographic verification:
// the client inspects claims purely for UX purposes, such as showing the signed-in
// username and expiring the local session before making a doomed request. Nothing
// decoded here may ever be used as an authorization decision on the server side.
//
// # Usage
//
//	identity, err := authtoken.Decode(token)
//	if err != nil {
//		// errors.Is(err, authtoken.ErrMalformedToken): discard the token
//	}
//	fmt.Println(identity.Username, identity.ExpiresAt)
//
// Decode is total over its input domain: it returns either a populated Identity
// or ErrMalformedToken, and never panics regardless of input.
package authtoken
