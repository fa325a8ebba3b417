// Package logger provides slog attribute helpers shared across the client.
//
// Helpers follow the empty-Attr pattern: zero values produce an attribute
// slog silently drops, so call sites never need nil checks:
//
//	log.Warn("credential rejected",
//		logger.Component("session"),
//		logger.Error(err),
//	)
//
// The client itself stays silent by default; every component that logs
// accepts a *slog.Logger through a functional option and falls back to a
// discard handler.
package logger
