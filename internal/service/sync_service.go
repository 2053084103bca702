// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
)

type deckSyncService struct {
	storages    *store.Storages
	incremental *incrementalPuller
	full        *fullPuller
	push        PushQueueService
	protected   ProtectedFieldProvider
	logger      *logger.Logger
}

// NewDeckSyncService assembles the pull pipeline (resolver, applier, pullers)
// around the given adapter and store, reusing the push service for the flush
// half of each cycle.
func NewDeckSyncService(
	server adapter.ServerAdapter,
	storages *store.Storages,
	push PushQueueService,
	protected ProtectedFieldProvider,
	pageLimit, maxAttempts int,
	logger *logger.Logger,
) DeckSyncService {
	guard := NewProtectedFieldGuard()
	resolver := NewConflictResolver(guard)
	applier := NewLocalApplier(storages.Sync, logger)

	return &deckSyncService{
		storages:    storages,
		incremental: newIncrementalPuller(server, storages, resolver, applier, pageLimit, maxAttempts, logger),
		full:        newFullPuller(server, storages, applier, pageLimit, maxAttempts, logger),
		push:        push,
		protected:   protected,
		logger:      logger,
	}
}

// RunCycle pulls and then flushes. A deck with no checkpoint has never
// completed a transfer, so it gets the full path even without forceFull.
func (s *deckSyncService) RunCycle(ctx context.Context, deckID string, forceFull bool) error {
	log := s.logger.WithDeck(deckID)

	protected, err := s.protected.ProtectedFields(ctx, deckID)
	if err != nil {
		return fmt.Errorf("load protected fields for deck %s: %w", deckID, err)
	}

	cp, err := s.storages.Checkpoints.Get(ctx, deckID)
	switch {
	case errors.Is(err, store.ErrCheckpointNotFound):
		err = s.full.run(ctx, deckID, false, protected)
	case err != nil:
		return err
	case forceFull:
		err = s.full.run(ctx, deckID, true, protected)
	case cp.AccessTier != "" && !cp.AccessTier.CanSyncUpdates():
		// The tier covers the initial download only. The cycle skips the
		// change feed but still flushes the queue: suggestions are accepted
		// from every tier.
		log.Debug().
			Str("access_tier", string(cp.AccessTier)).
			Msg("tier without update sync, keeping initial download")
	default:
		err = s.incremental.run(ctx, deckID, cp, protected)
	}

	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			// The deck was deleted or unshared server-side. Drop the local
			// projection so a later re-subscribe starts from nothing.
			log.Warn().Msg("deck gone from server, clearing local state")
			if clearErr := s.storages.Checkpoints.Clear(ctx, deckID); clearErr != nil {
				return fmt.Errorf("clear orphaned deck %s: %w", deckID, clearErr)
			}
			return ErrDeckGone
		}
		return err
	}

	accepted, err := s.push.Flush(ctx, deckID)
	if err != nil {
		return fmt.Errorf("flush push queue for deck %s: %w", deckID, err)
	}
	if accepted > 0 {
		log.Info().Int("accepted", accepted).Msg("push queue flushed")
	}
	return nil
}

// Unsubscribe deletes the checkpoint, cards, dedup markers, conflicts, queued
// edits and media metadata in one transaction.
func (s *deckSyncService) Unsubscribe(ctx context.Context, deckID string) error {
	if err := s.storages.Checkpoints.Clear(ctx, deckID); err != nil {
		return fmt.Errorf("unsubscribe deck %s: %w", deckID, err)
	}
	s.logger.WithDeck(deckID).Info().Msg("unsubscribed, local state cleared")
	return nil
}
