// Package realtime connects to the backend's event stream.
//
// The channel is authenticated once, at connection time, with the same bearer
// credential the REST gateway uses; an anonymous session connects without a
// token and receives whatever the backend serves unauthenticated clients.
// Reconnection and backoff are the caller's concern.
//
//	conn, err := realtime.Dial(ctx, cfg, store)
//	if err != nil { ... }
//	defer conn.Close()
//
//	for {
//		ev, err := conn.Next()
//		if err != nil {
//			return
//		}
//		handle(ev)
//	}
package realtime
