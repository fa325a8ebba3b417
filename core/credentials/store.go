package credentials

import "context"

// Store is a single key-value slot surviving process restarts.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the stored credential, or ErrNotFound when the slot is empty.
	Load(ctx context.Context) (string, error)

	// Save replaces the slot's content. The previous value, if any, is overwritten.
	Save(ctx context.Context, token string) error

	// Delete empties the slot. Deleting an already-empty slot is a no-op.
	Delete(ctx context.Context) error
}
