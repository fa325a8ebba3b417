package gateway

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds gateway client configuration.
type Config struct {
	// BaseURL is the backend root, without the /api prefix.
	BaseURL string `env:"BITHUNTER_API_URL" envDefault:"http://localhost:8000"`

	// RequestTimeout bounds every request made by the default HTTP client.
	RequestTimeout time.Duration `env:"BITHUNTER_API_TIMEOUT" envDefault:"15s"`
}

// Option is a functional option for configuring the gateway client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The configured
// RequestTimeout is ignored when a custom client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics. Logging is
// disabled by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
