// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

// Package store implements the SQLite-backed repositories that hold the
// local deck projection: cards, checkpoints, derived conflicts, the outbound
// push queue, note types and media metadata.
//
// Page application is transactional: ApplyPage commits a whole page's worth
// of changes together with the checkpoint advance, or nothing at all, so a
// stored checkpoint always corresponds to a fully-applied page.
package store

import (
	"context"

	"github.com/cardstream/decksync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CheckpointRepository persists per-deck sync progress markers.
type CheckpointRepository interface {
	// Get returns the stored checkpoint for deckID, or ErrCheckpointNotFound
	// when the deck has never completed a pull.
	Get(ctx context.Context, deckID string) (models.Checkpoint, error)

	// Advance stores cp if it is strictly ahead of the current checkpoint
	// (or none exists). Returns ErrStaleCheckpoint otherwise, so a slow
	// retried pull can never regress progress.
	Advance(ctx context.Context, cp models.Checkpoint) error

	// Reset overwrites the checkpoint without the staleness check, together
	// with the deck's applied-change markers. Only an explicit full-resync
	// request may roll a checkpoint back, and it must also forget which
	// change IDs were applied against the old baseline. A non-nil snapshot
	// is the complete set of card GUIDs in the new baseline: cards outside
	// it were deleted server-side and are tombstoned in the same
	// transaction.
	Reset(ctx context.Context, cp models.Checkpoint, snapshot []string) error

	// Clear removes the checkpoint together with the deck's cards, applied
	// change markers, conflicts, queued edits, note types and media metadata
	// as one atomic unit. Used on unsubscribe and on detected orphaning.
	Clear(ctx context.Context, deckID string) error
}

// ApplyPageParams is one fully-resolved page ready to be committed. Upserts
// carry the post-resolution card state; ChangeIDs are the deduplication keys
// this page covers, including changes skipped by protection (a skipped change
// is still consumed).
type ApplyPageParams struct {
	DeckID     string
	Upserts    []models.Card
	Tombstones []string
	NoteTypes  []models.NoteType
	ChangeIDs  []string
	Conflicts  []models.Conflict
	Checkpoint models.Checkpoint

	// AdvanceCheckpoint commits Checkpoint together with the page. Full-sync
	// pages leave it unset and write the snapshot checkpoint only once the
	// transfer completes; incremental pages advance on every page.
	AdvanceCheckpoint bool
}

// SyncRepository owns transactional page application and change-id
// deduplication.
type SyncRepository interface {
	// FilterApplied returns the subset of changeIDs that were already
	// committed for deckID, letting a resumed cycle reapply a page without
	// duplicating work.
	FilterApplied(ctx context.Context, deckID string, changeIDs []string) (map[string]struct{}, error)

	// ApplyPage commits params in a single transaction: card upserts,
	// tombstones, note types, dedup markers, derived conflicts, and the
	// checkpoint advance. Returns ErrStaleCheckpoint (nothing written) when
	// the checkpoint is not strictly ahead.
	ApplyPage(ctx context.Context, params ApplyPageParams) error
}

// CardRepository reads and mutates the local card projection.
type CardRepository interface {
	// GetCard returns one card or ErrCardNotFound.
	GetCard(ctx context.Context, deckID, cardGUID string) (models.Card, error)

	// GetCards returns the subset of guids that exist locally, keyed by guid.
	GetCards(ctx context.Context, deckID string, guids []string) (map[string]models.Card, error)

	// CountCards counts non-tombstoned cards in the deck.
	CountCards(ctx context.Context, deckID string) (int, error)

	// ListSuspendStates returns suspend/bury state for every live card.
	ListSuspendStates(ctx context.Context, deckID string) ([]models.SuspendChange, error)

	// SetSuspendStates overwrites suspend/bury state for the named cards.
	SetSuspendStates(ctx context.Context, deckID string, changes []models.SuspendChange) error

	// ApplyTagChanges merges tag additions and removals into the named cards.
	ApplyTagChanges(ctx context.Context, deckID string, changes []models.TagChange) error
}

// ConflictRepository surfaces derived conflicts for user review.
type ConflictRepository interface {
	List(ctx context.Context, deckID string) ([]models.Conflict, error)
	Resolve(ctx context.Context, deckID, cardGUID, fieldName string) error
}

// PushQueueRepository is the append-only outbound edit queue.
type PushQueueRepository interface {
	Enqueue(ctx context.Context, edit models.LocalEdit) error

	// NextBatch returns up to limit pending edits in enqueue order.
	NextBatch(ctx context.Context, deckID string, limit int) ([]models.LocalEdit, error)

	// MarkAccepted removes accepted edits from the queue.
	MarkAccepted(ctx context.Context, ids []string) error

	// MarkRejected keeps the edit with its rejection reason for the caller
	// to inspect or resubmit.
	MarkRejected(ctx context.Context, id, reason string) error

	ListRejected(ctx context.Context, deckID string) ([]models.LocalEdit, error)

	// Resubmit returns rejected edits to pending.
	Resubmit(ctx context.Context, ids []string) error

	PendingCount(ctx context.Context, deckID string) (int, error)
}

// NoteTypeRepository stores note-type definitions verbatim.
type NoteTypeRepository interface {
	SaveNoteTypes(ctx context.Context, deckID string, types []models.NoteType) error
	ListNoteTypes(ctx context.Context, deckID string) ([]models.NoteType, error)
}

// MediaRepository tracks content-addressed media metadata.
type MediaRepository interface {
	KnownHashes(ctx context.Context, deckID string) (map[string]struct{}, error)
	SaveFile(ctx context.Context, deckID string, file models.MediaFile) error
	ListFiles(ctx context.Context, deckID string) ([]models.MediaFile, error)
}
