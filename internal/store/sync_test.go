// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/decksync/models"
)

func TestApplyPage_CommitsWholePage(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	now := time.Now().UTC()
	params := ApplyPageParams{
		DeckID: "d1",
		Upserts: []models.Card{
			{DeckID: "d1", CardGUID: "g1", NoteType: "Vocabulary",
				Fields: map[string]string{"Front": "hola", "Back": "hello"},
				Tags:   []string{"spanish"}},
			{DeckID: "d1", CardGUID: "g2", Fields: map[string]string{"Front": "adiós"}},
		},
		NoteTypes: []models.NoteType{{ID: "nt1", Name: "Vocabulary", Fields: []string{"Front", "Back"}}},
		ChangeIDs: []string{"41", "42"},
		Conflicts: []models.Conflict{
			{DeckID: "d1", CardGUID: "g1", FieldName: "Back",
				LocalValue: "hi", ServerValue: "hello", DetectedAt: now},
		},
		Checkpoint:        models.Checkpoint{DeckID: "d1", LastChangeID: "42", LastSyncedAt: now},
		AdvanceCheckpoint: true,
	}
	require.NoError(t, storages.Sync.ApplyPage(ctx, params))

	card, err := storages.Cards.GetCard(ctx, "d1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "hola", card.Fields["Front"])
	assert.Equal(t, []string{"spanish"}, card.Tags)

	applied, err := storages.Sync.FilterApplied(ctx, "d1", []string{"41", "42", "43"})
	require.NoError(t, err)
	assert.Len(t, applied, 2)
	assert.NotContains(t, applied, "43")

	cp, err := storages.Checkpoints.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "42", cp.LastChangeID)

	conflicts, err := storages.Conflicts.List(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "hello", conflicts[0].ServerValue)

	types, err := storages.NoteTypes.ListNoteTypes(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, []string{"Front", "Back"}, types[0].Fields)
}

func TestApplyPage_StaleCheckpointWritesNothing(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, storages.Checkpoints.Advance(ctx, models.Checkpoint{
		DeckID: "d1", LastChangeID: "100", LastSyncedAt: now,
	}))

	err := storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID: "d1",
		Upserts: []models.Card{
			{DeckID: "d1", CardGUID: "g1", Fields: map[string]string{"Front": "hola"}},
		},
		ChangeIDs:         []string{"50"},
		Checkpoint:        models.Checkpoint{DeckID: "d1", LastChangeID: "50", LastSyncedAt: now},
		AdvanceCheckpoint: true,
	})
	assert.ErrorIs(t, err, ErrStaleCheckpoint)

	// The failed advance must have rolled back the card and dedup writes.
	_, err = storages.Cards.GetCard(ctx, "d1", "g1")
	assert.ErrorIs(t, err, ErrCardNotFound)

	applied, err := storages.Sync.FilterApplied(ctx, "d1", []string{"50"})
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestApplyPage_WithoutAdvanceLeavesCheckpointUntouched(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID: "d1",
		Upserts: []models.Card{
			{DeckID: "d1", CardGUID: "g1", Fields: map[string]string{"Front": "hola"}},
		},
	}))

	_, err := storages.Checkpoints.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrCheckpointNotFound)

	count, err := storages.Cards.CountCards(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApplyPage_TombstonesCard(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID: "d1",
		Upserts: []models.Card{
			{DeckID: "d1", CardGUID: "g1", Fields: map[string]string{"Front": "hola"}},
			{DeckID: "d1", CardGUID: "g2", Fields: map[string]string{"Front": "adiós"}},
		},
	}))
	require.NoError(t, storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID:     "d1",
		Tombstones: []string{"g1"},
	}))

	card, err := storages.Cards.GetCard(ctx, "d1", "g1")
	require.NoError(t, err)
	assert.True(t, card.Deleted)

	// Tombstoned cards drop out of the live count.
	count, err := storages.Cards.CountCards(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApplyPage_UpsertOverwritesExisting(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID:  "d1",
		Upserts: []models.Card{{DeckID: "d1", CardGUID: "g1", Fields: map[string]string{"Front": "old"}}},
	}))
	require.NoError(t, storages.Sync.ApplyPage(ctx, ApplyPageParams{
		DeckID: "d1",
		Upserts: []models.Card{{DeckID: "d1", CardGUID: "g1",
			Fields: map[string]string{"Front": "new"}, IsSuspended: true}},
	}))

	card, err := storages.Cards.GetCard(ctx, "d1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "new", card.Fields["Front"])
	assert.True(t, card.IsSuspended)
}

func TestFilterApplied_EmptyInput(t *testing.T) {
	storages := newTestStorages(t)

	applied, err := storages.Sync.FilterApplied(context.Background(), "d1", nil)
	require.NoError(t, err)
	assert.Empty(t, applied)
}
