package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bithunter/bithunter-go/core/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.Equal(t, slog.Attr{}, logger.Error(nil), "nil error yields empty attr")
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Component(""))
	assert.Equal(t, "session", logger.Component("session").Value.String())

	assert.Equal(t, slog.Attr{}, logger.Status(""))
	assert.Equal(t, "authenticated", logger.Status("authenticated").Value.String())

	assert.Equal(t, slog.Attr{}, logger.View(""))
	assert.Equal(t, "/trading", logger.View("/trading").Value.String())
}

func TestTimeHelpers(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.ExpiresAt(time.Time{}))

	at := time.Now().Round(0) // slog.Time discards the monotonic clock reading
	assert.Equal(t, at, logger.ExpiresAt(at).Value.Time())

	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}
