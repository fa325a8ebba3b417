package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bithunter/bithunter-go/core/credentials"
)

// defaultKey mirrors the browser client's localStorage key, namespaced.
const defaultKey = "bithunter:credential:token"

// Config holds Redis connection configuration.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect creates a Redis client and verifies connectivity with a ping before
// returning it. Transient failures are retried up to RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			client.Close()
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	client.Close()
	return nil, errors.Join(ErrNotReady, lastErr)
}

// Store is a credentials.Store backed by a single Redis key.
type Store struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// StoreOption configures the store.
type StoreOption func(*Store)

// WithKey overrides the record's key.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTTL makes the record expire server-side. Zero keeps it until deleted;
// the session store already deletes expired credentials itself, so the TTL is
// a safety net for abandoned deployments.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// NewStore creates a credential store over an established client.
func NewStore(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{client: client, key: defaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements credentials.Store.
func (s *Store) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", credentials.ErrNotFound
		}
		return "", errors.Join(credentials.ErrNotFound, err)
	}
	if val == "" {
		return "", credentials.ErrNotFound
	}
	return val, nil
}

// Save implements credentials.Store.
func (s *Store) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return errors.Join(credentials.ErrSaveFailed, err)
	}
	return nil
}

// Delete implements credentials.Store. Deleting an absent record is a no-op.
func (s *Store) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(credentials.ErrDeleteFailed, err)
	}
	return nil
}
