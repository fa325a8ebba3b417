package session

import (
	"log/slog"
	"time"
)

// Config holds session store configuration.
type Config struct {
	// RevalidateInterval is the period used by AutoRevalidate.
	RevalidateInterval time.Duration `env:"BITHUNTER_REVALIDATE_INTERVAL" envDefault:"30s"`
}

// Option is a functional option for configuring the session store.
type Option func(*Store)

// WithLogger sets the logger for lifecycle diagnostics. The store is silent
// by default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock replaces the store's time source. Expiry checks in tests depend
// on a controllable clock.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}
