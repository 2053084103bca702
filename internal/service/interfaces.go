// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

// Package service implements the deck synchronization engine: checkpointed
// incremental pulls, paginated full pulls, client-side conflict resolution
// with protected-field exclusion, transactional application to the local
// store, the outbound push queue, and the scheduler that drives it all.
package service

import (
	"context"
	"time"

	"github.com/cardstream/decksync/models"
)

// ProtectedFieldProvider supplies the per-deck set of locally protected
// fields. The settings surface that lets users mark fields as "mine" owns the
// implementation; the sync core only reads it.
type ProtectedFieldProvider interface {
	ProtectedFields(ctx context.Context, deckID string) (models.ProtectedFieldSet, error)
}

// DeckSyncService runs one complete sync cycle for a deck: pull (incremental
// or full), then a push-queue flush. It is invoked by the scheduler under the
// deck's single-flight lock.
type DeckSyncService interface {
	// RunCycle synchronises deckID. When forceFull is set, or no checkpoint
	// exists, a paginated full sync runs; otherwise the incremental change
	// feed is drained. Cancellation is observed at page boundaries.
	RunCycle(ctx context.Context, deckID string, forceFull bool) error

	// Unsubscribe removes the deck's checkpoint and local projection as one
	// atomic unit and is the only terminal transition for a scheduled deck.
	Unsubscribe(ctx context.Context, deckID string) error
}

// PushQueueService accepts local edits and flushes them to the server in
// bounded batches with per-item outcomes.
type PushQueueService interface {
	// Enqueue appends a local edit to the deck's outbound queue. Edits to
	// protected fields are accepted only with models.EditKindPublish; an
	// ordinary edit of a protected field returns ErrProtectedField.
	Enqueue(ctx context.Context, edit models.LocalEdit) error

	// Flush submits pending edits for deckID in batches. Accepted items
	// leave the queue; rejected items are retained with their reason.
	// Returns the number of accepted edits.
	Flush(ctx context.Context, deckID string) (int, error)

	// Rejected lists edits the server refused, with rejection reasons.
	Rejected(ctx context.Context, deckID string) ([]models.LocalEdit, error)

	// Resubmit returns previously rejected edits to the pending queue.
	Resubmit(ctx context.Context, ids []string) error
}

// StateSyncService exchanges tag and suspend/bury state with the server
// using the same old/new comparison semantics as field sync.
type StateSyncService interface {
	PullTags(ctx context.Context, deckID, since string) (int, error)
	PushTags(ctx context.Context, deckID string, changes []models.TagChange) (int, error)
	PullSuspendStates(ctx context.Context, deckID string) (int, error)
	PushSuspendStates(ctx context.Context, deckID string) (int, error)
}

// MediaSyncService keeps deck media in step, content-addressed by SHA-256.
type MediaSyncService interface {
	// PullMedia lists server media and downloads files whose hash is not
	// yet known locally. Returns the number of files fetched.
	PullMedia(ctx context.Context, deckID string) (int, error)

	// UploadMedia pushes one file: requests an upload URL, transfers the
	// content, and confirms with the file's hash.
	UploadMedia(ctx context.Context, deckID, fileName string, content []byte) error
}

// NoteTypeSyncService fetches or publishes note-type definitions. Note types
// are written verbatim and are never subject to protected-field logic.
type NoteTypeSyncService interface {
	PullNoteTypes(ctx context.Context, deckID string) ([]models.NoteType, error)
	PushNoteTypes(ctx context.Context, deckID string, types []models.NoteType) (int, error)
}

// SchedulerStatus is the externally visible state of one scheduled deck.
type SchedulerStatus struct {
	DeckID     string
	State      DeckState
	LastError  string
	LastSynced time.Time
	NextDue    time.Time
}

// Scheduler drives background, periodic and manual sync with single-flight
// per deck and a bounded worker pool across decks.
type Scheduler interface {
	// Schedule adds a deck to the periodic schedule set.
	Schedule(deckID string)

	// Unschedule removes the deck from the schedule set and clears its local
	// state. Terminal for the deck.
	Unschedule(ctx context.Context, deckID string) error

	// TriggerSync marks the deck due immediately. If a cycle is already
	// running for the deck, the trigger is a no-op, not an error.
	TriggerSync(deckID string, forceFull bool)

	// Status reports the deck's scheduler state.
	Status(deckID string) (SchedulerStatus, bool)

	// Run starts the scheduling loop; it blocks until Stop is called or ctx
	// is cancelled.
	Run(ctx context.Context)

	// Stop cancels the loop and waits for in-flight cycles to finish their
	// current page.
	Stop()
}
