package credentials

import (
	"context"
	"sync"
)

// Memory is an in-process credential slot. The record does not survive
// restarts; intended for tests and ephemeral sessions.
type Memory struct {
	mu      sync.Mutex
	token   string
	present bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Store.
func (m *Memory) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present {
		return "", ErrNotFound
	}
	return m.token, nil
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.present = true
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.present = false
	return nil
}
