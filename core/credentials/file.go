package credentials

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// recordFileName matches the storage key the browser client used.
const recordFileName = "token"

// File stores the credential record in a single mode-0600 file.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store writing to the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultFilePath returns the per-user location of the credential record,
// typically ~/.config/bithunter/token on Linux.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bithunter", recordFileName), nil
}

// Load implements Store. A missing or empty file reports ErrNotFound.
func (f *File) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrNotFound, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// Save implements Store. The record is written to a temp file in the same
// directory and moved into place, so readers never observe a partial write.
func (f *File) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	tmp, err := os.CreateTemp(dir, recordFileName+".*")
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Delete implements Store. Removing an absent record is not an error.
func (f *File) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}
