package credentials

import "errors"

var (
	// ErrNotFound is returned by Load when no credential record exists.
	ErrNotFound = errors.New("credential record not found")
	// ErrSaveFailed is returned when the credential record cannot be written.
	ErrSaveFailed = errors.New("failed to save credential record")
	// ErrDeleteFailed is returned when the credential record cannot be removed.
	ErrDeleteFailed = errors.New("failed to delete credential record")
)
