package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrInvalidEntry is returned when an entry fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntry = errors.New("invalid leaderboard entry")

	// ErrSaveFailed is returned when an entry could not be persisted.
	ErrSaveFailed = errors.New("failed to save leaderboard entry")

	// ErrListFailed is returned when entries could not be read back.
	ErrListFailed = errors.New("failed to list leaderboard entries")
)
