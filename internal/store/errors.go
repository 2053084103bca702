package store

import "errors"

var (
	// ErrStaleCheckpoint is returned by Advance when the proposed checkpoint
	// is not strictly ahead of the stored one. Always recoverable: the caller
	// discards its stale advance and keeps the newer stored progress.
	ErrStaleCheckpoint = errors.New("stale checkpoint")

	// ErrCheckpointNotFound is returned by Get when the deck has never
	// completed a pull.
	ErrCheckpointNotFound = errors.New("checkpoint not found")

	// ErrCardNotFound is returned when a card lookup matches nothing.
	ErrCardNotFound = errors.New("card not found")
)
