// Package redis provides a Redis-backed credential record store for headless
// deployments of the client, such as trading bots sharing one signed-in
// identity across processes.
//
// The store keeps the same single-slot model as the file store: one
// well-known key, one opaque value, written on login and deleted on logout or
// invalidation. Connect validates the URL, retries with a fixed interval, and
// pings before returning a usable client.
//
//	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: url})
//	if err != nil { ... }
//	store := redis.NewStore(client)
//
// NewStore's result satisfies credentials.Store.
package redis
