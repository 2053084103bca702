// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"fmt"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

type stateSyncService struct {
	server      adapter.ServerAdapter
	cards       store.CardRepository
	maxAttempts int
	logger      *logger.Logger
}

// NewStateSyncService exchanges tag and suspend/bury state. Both travel
// outside the change feed: they are per-user study state, not deck content,
// so they never create conflicts and never touch the checkpoint.
func NewStateSyncService(server adapter.ServerAdapter, cards store.CardRepository, maxAttempts int, logger *logger.Logger) StateSyncService {
	return &stateSyncService{server: server, cards: cards, maxAttempts: maxAttempts, logger: logger}
}

func (s *stateSyncService) PullTags(ctx context.Context, deckID, since string) (int, error) {
	log := s.logger.WithDeck(deckID)

	var resp models.TagSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var tagErr error
		resp, tagErr = s.server.SyncTags(ctx, models.TagSyncRequest{
			DeckID: deckID,
			Action: models.ActionPull,
			Since:  since,
		})
		return tagErr
	})
	if err != nil {
		return 0, fmt.Errorf("pull tags for deck %s: %w", deckID, err)
	}
	if len(resp.Changes) == 0 {
		return 0, nil
	}

	if err = s.cards.ApplyTagChanges(ctx, deckID, resp.Changes); err != nil {
		return 0, err
	}
	log.Debug().Int("cards", len(resp.Changes)).Msg("applied tag changes")
	return len(resp.Changes), nil
}

func (s *stateSyncService) PushTags(ctx context.Context, deckID string, changes []models.TagChange) (int, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	log := s.logger.WithDeck(deckID)

	var resp models.TagSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var tagErr error
		resp, tagErr = s.server.SyncTags(ctx, models.TagSyncRequest{
			DeckID:  deckID,
			Action:  models.ActionPush,
			Changes: changes,
		})
		return tagErr
	})
	if err != nil {
		return 0, fmt.Errorf("push tags for deck %s: %w", deckID, err)
	}
	return resp.TagsAdded + resp.TagsRemoved, nil
}

// PullSuspendStates overwrites local suspend/bury flags with the server's.
// Local state is authoritative between pulls, so callers normally push before
// they pull.
func (s *stateSyncService) PullSuspendStates(ctx context.Context, deckID string) (int, error) {
	log := s.logger.WithDeck(deckID)

	var resp models.SuspendSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var susErr error
		resp, susErr = s.server.SyncSuspendState(ctx, models.SuspendSyncRequest{
			DeckID: deckID,
			Action: models.ActionPull,
		})
		return susErr
	})
	if err != nil {
		return 0, fmt.Errorf("pull suspend states for deck %s: %w", deckID, err)
	}
	if len(resp.Changes) == 0 {
		return 0, nil
	}

	if err = s.cards.SetSuspendStates(ctx, deckID, resp.Changes); err != nil {
		return 0, err
	}
	log.Debug().Int("cards", len(resp.Changes)).Msg("applied suspend states")
	return len(resp.Changes), nil
}

func (s *stateSyncService) PushSuspendStates(ctx context.Context, deckID string) (int, error) {
	log := s.logger.WithDeck(deckID)

	states, err := s.cards.ListSuspendStates(ctx, deckID)
	if err != nil {
		return 0, err
	}
	if len(states) == 0 {
		return 0, nil
	}

	var resp models.SuspendSyncResponse
	err = withRetry(ctx, log, s.maxAttempts, func() error {
		var susErr error
		resp, susErr = s.server.SyncSuspendState(ctx, models.SuspendSyncRequest{
			DeckID:  deckID,
			Action:  models.ActionPush,
			Changes: states,
		})
		return susErr
	})
	if err != nil {
		return 0, fmt.Errorf("push suspend states for deck %s: %w", deckID, err)
	}
	return resp.CardsUpdated, nil
}
