// Package credentials persists the single bearer credential record the client
// holds between process restarts.
//
// The model is one well-known slot per profile: at most one record exists at a
// time, written on successful login and deleted on logout or invalidation. The
// value is an opaque string; nothing in this package inspects it.
//
// Two implementations ship with the package:
//
//   - File: a mode-0600 file, the desktop/CLI equivalent of the browser's
//     localStorage slot. Writes go through a temp file and rename.
//   - Memory: an in-process slot for tests and ephemeral sessions.
//
// A Redis-backed implementation for headless deployments lives in
// integration/credentials/redis.
package credentials
