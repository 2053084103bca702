// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/mock"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

// stubPushService avoids the internal/mock import cycle for the flush leg.
type stubPushService struct {
	mu      sync.Mutex
	flushed []string
	n       int
	err     error
}

func (s *stubPushService) Enqueue(context.Context, models.LocalEdit) error { return nil }

func (s *stubPushService) Flush(_ context.Context, deckID string) (int, error) {
	s.mu.Lock()
	s.flushed = append(s.flushed, deckID)
	s.mu.Unlock()
	return s.n, s.err
}

func (s *stubPushService) Rejected(context.Context, string) ([]models.LocalEdit, error) {
	return nil, nil
}

func (s *stubPushService) Resubmit(context.Context, []string) error { return nil }

type cycleMocks struct {
	server *mock.MockServerAdapter
	sync   *mock.MockSyncRepository
	cards  *mock.MockCardRepository
	cps    *mock.MockCheckpointRepository
	push   *stubPushService
}

func newTestSyncService(ctrl *gomock.Controller) (DeckSyncService, cycleMocks) {
	m := cycleMocks{
		server: mock.NewMockServerAdapter(ctrl),
		sync:   mock.NewMockSyncRepository(ctrl),
		cards:  mock.NewMockCardRepository(ctrl),
		cps:    mock.NewMockCheckpointRepository(ctrl),
		push:   &stubPushService{},
	}
	storages := &store.Storages{
		Checkpoints: m.cps,
		Sync:        m.sync,
		Cards:       m.cards,
	}
	svc := NewDeckSyncService(m.server, storages, m.push, NewStaticProtectedFields(nil), 100, 1, logger.Nop())
	return svc, m
}

func TestSyncService_MissingCheckpointTakesFullPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	m.cps.EXPECT().Get(ctx, "d1").Return(models.Checkpoint{}, store.ErrCheckpointNotFound)
	m.cards.EXPECT().CountCards(ctx, "d1").Return(0, nil)
	m.server.EXPECT().PullCards(ctx, models.PullRequest{DeckID: "d1", Offset: 0, Limit: 100}).
		Return(models.FullPullResponse{Success: true, LatestChangeID: "42"}, nil)
	m.cps.EXPECT().Advance(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cp models.Checkpoint) error {
			assert.Equal(t, "42", cp.LastChangeID)
			return nil
		})

	require.NoError(t, svc.RunCycle(ctx, "d1", false))
	assert.Equal(t, []string{"d1"}, m.push.flushed)
}

func TestSyncService_ForceFullIgnoresLocalProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	m.cps.EXPECT().Get(ctx, "d1").Return(models.Checkpoint{DeckID: "d1", LastChangeID: "42"}, nil)
	// forced resync never consults the local count and restarts at offset 0
	m.server.EXPECT().PullCards(ctx, models.PullRequest{DeckID: "d1", Offset: 0, Limit: 100}).
		Return(models.FullPullResponse{Success: true, LatestChangeID: "40"}, nil)
	m.cps.EXPECT().Reset(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cp models.Checkpoint, _ []string) error {
			assert.Equal(t, "40", cp.LastChangeID)
			return nil
		})

	require.NoError(t, svc.RunCycle(ctx, "d1", true))
}

func TestSyncService_FreeTierSkipsUpdatePull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	cp := models.Checkpoint{DeckID: "d1", LastChangeID: "42", AccessTier: models.TierFree}
	m.cps.EXPECT().Get(ctx, "d1").Return(cp, nil)
	// no PullChanges, no Advance: the free tier keeps its initial download

	require.NoError(t, svc.RunCycle(ctx, "d1", false))
	assert.Equal(t, []string{"d1"}, m.push.flushed, "suggestions still flush on the free tier")
}

func TestSyncService_IncrementalPathFromCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	cp := models.Checkpoint{DeckID: "d1", LastChangeID: "42", LastSyncedAt: time.Now().Add(-time.Hour)}
	m.cps.EXPECT().Get(ctx, "d1").Return(cp, nil)
	m.server.EXPECT().PullChanges(ctx, models.PullRequest{DeckID: "d1", LastChangeID: "42", Limit: 100}).
		Return(models.PullResponse{Success: true, LatestChangeID: "42"}, nil)
	// already current: the cycle still refreshes the sync timestamp
	m.cps.EXPECT().Advance(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.RunCycle(ctx, "d1", false))
	assert.Equal(t, []string{"d1"}, m.push.flushed)
}

func TestSyncService_DeckGoneClearsLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	cp := models.Checkpoint{DeckID: "d1", LastChangeID: "42"}
	m.cps.EXPECT().Get(ctx, "d1").Return(cp, nil)
	m.server.EXPECT().PullChanges(ctx, gomock.Any()).Return(models.PullResponse{}, adapter.ErrNotFound)
	m.cps.EXPECT().Clear(ctx, "d1").Return(nil)

	err := svc.RunCycle(ctx, "d1", false)
	assert.ErrorIs(t, err, ErrDeckGone)
	assert.Empty(t, m.push.flushed, "no flush against a deck that is gone")
}

func TestSyncService_PullErrorSkipsFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	m.cps.EXPECT().Get(ctx, "d1").Return(models.Checkpoint{DeckID: "d1", LastChangeID: "42"}, nil)
	m.server.EXPECT().PullChanges(ctx, gomock.Any()).Return(models.PullResponse{}, adapter.ErrServerUnavailable)

	err := svc.RunCycle(ctx, "d1", false)
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.Empty(t, m.push.flushed)
}

func TestSyncService_FlushErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	m.push.err = errBoom
	ctx := context.Background()

	m.cps.EXPECT().Get(ctx, "d1").Return(models.Checkpoint{DeckID: "d1", LastChangeID: "42"}, nil)
	m.server.EXPECT().PullChanges(ctx, gomock.Any()).
		Return(models.PullResponse{Success: true, LatestChangeID: "42"}, nil)
	m.cps.EXPECT().Advance(ctx, gomock.Any()).Return(nil)

	err := svc.RunCycle(context.Background(), "d1", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
}

func TestSyncService_UnsubscribeClearsCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestSyncService(ctrl)
	ctx := context.Background()

	m.cps.EXPECT().Clear(ctx, "d1").Return(nil)
	require.NoError(t, svc.Unsubscribe(ctx, "d1"))
}
