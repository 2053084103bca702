// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/decksync/models"
)

func enqueueN(t *testing.T, storages *Storages, deckID string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-e%d", deckID, i)
		require.NoError(t, storages.PushQueue.Enqueue(context.Background(), models.LocalEdit{
			ID:        id,
			DeckID:    deckID,
			CardGUID:  fmt.Sprintf("g%d", i),
			FieldName: "Front",
			NewValue:  fmt.Sprintf("v%d", i),
			Kind:      models.EditKindEdit,
		}))
		ids = append(ids, id)
	}
	return ids
}

func TestPushQueue_NextBatchPreservesEnqueueOrder(t *testing.T) {
	storages := newTestStorages(t)
	ids := enqueueN(t, storages, "d1", 5)

	batch, err := storages.PushQueue.NextBatch(context.Background(), "d1", 3)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	for i, edit := range batch {
		assert.Equal(t, ids[i], edit.ID)
		assert.Equal(t, models.EditPending, edit.Status)
	}
}

func TestPushQueue_MarkAcceptedRemoves(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	ids := enqueueN(t, storages, "d1", 3)

	require.NoError(t, storages.PushQueue.MarkAccepted(ctx, ids[:2]))

	batch, err := storages.PushQueue.NextBatch(ctx, "d1", 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, ids[2], batch[0].ID)
}

func TestPushQueue_RejectListResubmit(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	ids := enqueueN(t, storages, "d1", 2)

	require.NoError(t, storages.PushQueue.MarkRejected(ctx, ids[0], "field is protected"))

	rejected, err := storages.PushQueue.ListRejected(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, ids[0], rejected[0].ID)
	assert.Equal(t, "field is protected", rejected[0].Rejection)
	assert.Equal(t, models.EditRejected, rejected[0].Status)

	// Rejected edits are parked: they leave the pending batch.
	pending, err := storages.PushQueue.PendingCount(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	require.NoError(t, storages.PushQueue.Resubmit(ctx, []string{ids[0]}))

	pending, err = storages.PushQueue.PendingCount(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	resubmitted, err := storages.PushQueue.NextBatch(ctx, "d1", 10)
	require.NoError(t, err)
	require.Len(t, resubmitted, 2)
	assert.Empty(t, resubmitted[0].Rejection)
}

func TestPushQueue_ResubmitIgnoresPendingIDs(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	ids := enqueueN(t, storages, "d1", 1)

	// Resubmitting an edit that was never rejected is a no-op.
	require.NoError(t, storages.PushQueue.Resubmit(ctx, ids))

	pending, err := storages.PushQueue.PendingCount(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestPushQueue_DuplicateIDRejected(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	edit := models.LocalEdit{ID: "e1", DeckID: "d1", CardGUID: "g1", Kind: models.EditKindEdit}
	require.NoError(t, storages.PushQueue.Enqueue(ctx, edit))
	assert.Error(t, storages.PushQueue.Enqueue(ctx, edit))
}

func TestPushQueue_ScopedPerDeck(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	enqueueN(t, storages, "d1", 2)
	enqueueN(t, storages, "d2", 3)

	batch, err := storages.PushQueue.NextBatch(ctx, "d2", 10)
	require.NoError(t, err)
	assert.Len(t, batch, 3)
}
