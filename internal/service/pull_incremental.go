// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

// incrementalPuller drains the change feed from the deck's checkpoint to the
// current head, one bounded page at a time. Each page is resolved, applied
// and checkpointed as a unit, so a failure or cancellation between pages
// resumes from the last applied page on the next cycle.
type incrementalPuller struct {
	server      adapter.ServerAdapter
	storages    *store.Storages
	resolver    *ConflictResolver
	applier     *LocalApplier
	pageLimit   int
	maxAttempts int
	logger      *logger.Logger
}

func newIncrementalPuller(
	server adapter.ServerAdapter,
	storages *store.Storages,
	resolver *ConflictResolver,
	applier *LocalApplier,
	pageLimit, maxAttempts int,
	logger *logger.Logger,
) *incrementalPuller {
	return &incrementalPuller{
		server:      server,
		storages:    storages,
		resolver:    resolver,
		applier:     applier,
		pageLimit:   pageLimit,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// run pulls all changes after cp. protected is the locally configured set;
// server-announced protected fields are merged in as pages arrive.
func (p *incrementalPuller) run(ctx context.Context, deckID string, cp models.Checkpoint, protected models.ProtectedFieldSet) error {
	log := p.logger.WithDeck(deckID)
	watermark := cp.LastChangeID
	advanced := false

	for {
		// Cancellation is observed here, at the page boundary, never
		// mid-page.
		if err := ctx.Err(); err != nil {
			return err
		}

		var resp models.PullResponse
		err := withRetry(ctx, log, p.maxAttempts, func() error {
			var pullErr error
			resp, pullErr = p.server.PullChanges(ctx, models.PullRequest{
				DeckID:       deckID,
				LastChangeID: watermark,
				Limit:        p.pageLimit,
			})
			return pullErr
		})
		if err != nil {
			return fmt.Errorf("incremental pull for deck %s: %w", deckID, err)
		}

		for _, f := range resp.ProtectedFields {
			if protected == nil {
				protected = models.ProtectedFieldSet{}
			}
			protected[f] = struct{}{}
		}

		if len(resp.Changes) == 0 && !resp.HasMore {
			break
		}
		if len(resp.Changes) == 0 && resp.HasMore {
			return fmt.Errorf("%w: empty page with has_more set", adapter.ErrMalformedResponse)
		}

		newWatermark := resp.LatestChangeID
		if newWatermark == "" {
			return fmt.Errorf("%w: page without latest_change_id", adapter.ErrMalformedResponse)
		}

		if err = p.applyPage(ctx, deckID, cp, resp.Changes, newWatermark, protected); err != nil {
			if errors.Is(err, store.ErrStaleCheckpoint) {
				// A newer cycle already advanced past this page; its data is
				// newer than ours, so the stale advance is simply discarded.
				log.Info().Str("watermark", newWatermark).Msg("discarding stale pull advance")
				return nil
			}
			return err
		}

		advanced = true
		watermark = newWatermark

		if !resp.HasMore {
			break
		}
	}

	if !advanced {
		// Already current: still record the sync time on the checkpoint.
		fresh := cp
		fresh.LastSyncedAt = time.Now().UTC()
		if err := p.storages.Checkpoints.Advance(ctx, fresh); err != nil && !errors.Is(err, store.ErrStaleCheckpoint) {
			return fmt.Errorf("record sync time for deck %s: %w", deckID, err)
		}
	}

	return nil
}

func (p *incrementalPuller) applyPage(
	ctx context.Context,
	deckID string,
	cp models.Checkpoint,
	changes []models.Change,
	newWatermark string,
	protected models.ProtectedFieldSet,
) error {
	ids := make([]string, 0, len(changes))
	for _, c := range changes {
		ids = append(ids, c.ChangeID)
	}
	applied, err := p.storages.Sync.FilterApplied(ctx, deckID, ids)
	if err != nil {
		return err
	}

	fresh := changes[:0:0]
	guids := make([]string, 0, len(changes))
	seen := make(map[string]struct{}, len(changes))
	for _, c := range changes {
		if _, done := applied[c.ChangeID]; done {
			continue
		}
		fresh = append(fresh, c)
		if _, ok := seen[c.CardGUID]; !ok {
			seen[c.CardGUID] = struct{}{}
			guids = append(guids, c.CardGUID)
		}
	}

	localCards, err := p.storages.Cards.GetCards(ctx, deckID, guids)
	if err != nil {
		return err
	}

	resolutions := make([]Resolution, 0, len(fresh))
	for _, c := range fresh {
		var card *models.Card
		if local, ok := localCards[c.CardGUID]; ok {
			card = &local
		}
		resolutions = append(resolutions, p.resolver.Resolve(deckID, c, card, protected))
	}

	next := models.Checkpoint{
		DeckID:       deckID,
		LastChangeID: newWatermark,
		DeckVersion:  cp.DeckVersion,
		AccessTier:   cp.AccessTier,
		LastSyncedAt: time.Now().UTC(),
	}
	return p.applier.ApplyResolved(ctx, deckID, resolutions, localCards, next, true)
}
