package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/mock"
	"github.com/cardstream/decksync/models"
)

func newTestStateSync(ctrl *gomock.Controller) (StateSyncService, *mock.MockServerAdapter, *mock.MockCardRepository) {
	server := mock.NewMockServerAdapter(ctrl)
	cards := mock.NewMockCardRepository(ctrl)
	return NewStateSyncService(server, cards, 1, logger.Nop()), server, cards
}

func TestStateSync_PullTagsAppliesChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, cards := newTestStateSync(ctrl)
	ctx := context.Background()

	changes := []models.TagChange{
		{CardGUID: "g1", Added: []string{"leech"}},
		{CardGUID: "g2", Removed: []string{"marked"}},
	}
	server.EXPECT().SyncTags(ctx, models.TagSyncRequest{
		DeckID: "d1",
		Action: models.ActionPull,
		Since:  "2026-08-01T00:00:00Z",
	}).Return(models.TagSyncResponse{Success: true, Changes: changes}, nil)
	cards.EXPECT().ApplyTagChanges(ctx, "d1", changes).Return(nil)

	n, err := svc.PullTags(ctx, "d1", "2026-08-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStateSync_PullTagsNoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, _ := newTestStateSync(ctrl)
	ctx := context.Background()

	server.EXPECT().SyncTags(ctx, gomock.Any()).Return(models.TagSyncResponse{Success: true}, nil)

	n, err := svc.PullTags(ctx, "d1", "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStateSync_PushTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, _ := newTestStateSync(ctrl)
	ctx := context.Background()

	changes := []models.TagChange{{CardGUID: "g1", Added: []string{"vocab"}}}
	server.EXPECT().SyncTags(ctx, models.TagSyncRequest{
		DeckID:  "d1",
		Action:  models.ActionPush,
		Changes: changes,
	}).Return(models.TagSyncResponse{Success: true, TagsAdded: 1, TagsRemoved: 0}, nil)

	n, err := svc.PushTags(ctx, "d1", changes)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStateSync_PushTagsEmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestStateSync(ctrl)

	n, err := svc.PushTags(context.Background(), "d1", nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStateSync_PullSuspendStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, cards := newTestStateSync(ctrl)
	ctx := context.Background()

	states := []models.SuspendChange{
		{CardGUID: "g1", IsSuspended: true},
		{CardGUID: "g2", IsBuried: true},
	}
	server.EXPECT().SyncSuspendState(ctx, models.SuspendSyncRequest{
		DeckID: "d1",
		Action: models.ActionPull,
	}).Return(models.SuspendSyncResponse{Success: true, Changes: states}, nil)
	cards.EXPECT().SetSuspendStates(ctx, "d1", states).Return(nil)

	n, err := svc.PullSuspendStates(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStateSync_PushSuspendStatesReadsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, cards := newTestStateSync(ctrl)
	ctx := context.Background()

	states := []models.SuspendChange{{CardGUID: "g1", IsSuspended: true}}
	cards.EXPECT().ListSuspendStates(ctx, "d1").Return(states, nil)
	server.EXPECT().SyncSuspendState(ctx, models.SuspendSyncRequest{
		DeckID:  "d1",
		Action:  models.ActionPush,
		Changes: states,
	}).Return(models.SuspendSyncResponse{Success: true, CardsUpdated: 1}, nil)

	n, err := svc.PushSuspendStates(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStateSync_PushSuspendStatesNothingLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cards := newTestStateSync(ctrl)
	ctx := context.Background()

	cards.EXPECT().ListSuspendStates(ctx, "d1").Return(nil, nil)

	n, err := svc.PushSuspendStates(ctx, "d1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStateSync_TransportErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, server, _ := newTestStateSync(ctrl)
	ctx := context.Background()

	server.EXPECT().SyncTags(ctx, gomock.Any()).Return(models.TagSyncResponse{}, adapter.ErrServerUnavailable)

	_, err := svc.PullTags(ctx, "d1", "")
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
}
