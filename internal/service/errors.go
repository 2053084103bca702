package service

import "errors"

var (
	// ErrProtectedField is returned when an ordinary edit targets a field the
	// user has protected. Publishing a protected field requires an explicit
	// models.EditKindPublish edit.
	ErrProtectedField = errors.New("field is protected")

	// ErrNotScheduled is returned by scheduler operations on a deck that is
	// not in the schedule set.
	ErrNotScheduled = errors.New("deck is not scheduled")

	// ErrDeckGone signals that the server no longer knows the deck. Local
	// state has already been cleared; the scheduler drops the deck on sight.
	ErrDeckGone = errors.New("deck no longer exists on server")
)
