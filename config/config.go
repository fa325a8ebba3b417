// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/bithunter/bithunter-go/core/gateway"
	"github.com/bithunter/bithunter-go/core/realtime"
	"github.com/bithunter/bithunter-go/core/session"
)

// ErrParseFailed is returned when environment variables cannot be parsed.
var ErrParseFailed = errors.New("failed to parse configuration from environment")

// Config aggregates every component's configuration.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"bithunter-client"`

	// CredentialsFile overrides the default per-user credential record path.
	CredentialsFile string `env:"BITHUNTER_CREDENTIALS_FILE"`

	Gateway  gateway.Config
	Realtime realtime.Config
	Session  session.Config
}

// Load reads configuration from the environment. A missing .env file is not
// an error; a present one only fills variables that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseFailed, err)
	}
	return cfg, nil
}
