package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return the empty Attr for zero values, so call sites can
// pass them unconditionally: log.Info("msg", logger.Error(err)) is safe even
// when err is nil.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags a log record with the emitting component's name.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Status records a session status transition target.
func Status(status string) slog.Attr {
	if status == "" {
		return slog.Attr{}
	}
	return slog.String("status", status)
}

// View records the navigation target a guard decision was made for.
func View(view string) slog.Attr {
	if view == "" {
		return slog.Attr{}
	}
	return slog.String("view", view)
}

// Duration creates an attribute for an elapsed duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ExpiresAt records a credential expiry timestamp.
func ExpiresAt(t time.Time) slog.Attr {
	if t.IsZero() {
		return slog.Attr{}
	}
	return slog.Time("expires_at", t)
}
