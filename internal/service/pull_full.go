// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

// fullPuller transfers a complete deck snapshot in offset/limit pages. Pages
// are committed one at a time, never buffered whole, so decks with tens of
// thousands of cards import in bounded memory and a mid-transfer failure
// keeps the already-applied pages. The snapshot checkpoint is written only
// after the last page.
type fullPuller struct {
	server      adapter.ServerAdapter
	storages    *store.Storages
	applier     *LocalApplier
	pageLimit   int
	maxAttempts int
	logger      *logger.Logger
}

func newFullPuller(
	server adapter.ServerAdapter,
	storages *store.Storages,
	applier *LocalApplier,
	pageLimit, maxAttempts int,
	logger *logger.Logger,
) *fullPuller {
	return &fullPuller{
		server:      server,
		storages:    storages,
		applier:     applier,
		pageLimit:   pageLimit,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// run imports the deck. When forced is false and cards already exist locally
// (a previous transfer died mid-way), the transfer resumes at the local card
// count: pages are applied in strictly increasing offset order, whole or not
// at all, so the count equals the number of cards already imported.
func (p *fullPuller) run(ctx context.Context, deckID string, forced bool, protected models.ProtectedFieldSet) error {
	log := p.logger.WithDeck(deckID)

	offset := 0
	// A forced resync restarts at offset zero and remembers every GUID the
	// snapshot delivers, so cards the server deleted can be swept afterwards.
	var snapshot []string
	if forced {
		snapshot = []string{}
	} else {
		imported, err := p.storages.Cards.CountCards(ctx, deckID)
		if err != nil {
			return err
		}
		offset = imported
	}

	var latestChangeID, deckVersion string
	var tier models.AccessTier
	fetched := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var resp models.FullPullResponse
		err := withRetry(ctx, log, p.maxAttempts, func() error {
			var pullErr error
			resp, pullErr = p.server.PullCards(ctx, models.PullRequest{
				DeckID: deckID,
				Offset: offset,
				Limit:  p.pageLimit,
			})
			return pullErr
		})
		if err != nil {
			return fmt.Errorf("full sync page at offset %d for deck %s: %w", offset, deckID, err)
		}

		if resp.LatestChangeID != "" {
			latestChangeID = resp.LatestChangeID
		}
		if resp.DeckVersion != "" {
			// A deck published mid-transfer can report a newer version on a
			// later page; the checkpoint records the newest one seen.
			if deckVersion == "" || models.CompareVersions(resp.DeckVersion, deckVersion) > 0 {
				deckVersion = resp.DeckVersion
			}
		}
		if resp.Deck != nil && resp.Deck.AccessTier != "" {
			tier = resp.Deck.AccessTier
		}

		if len(resp.Cards) == 0 {
			if resp.HasMore {
				return fmt.Errorf("%w: empty full-sync page with has_more set", adapter.ErrMalformedResponse)
			}
			break
		}

		guids := make([]string, 0, len(resp.Cards))
		for _, c := range resp.Cards {
			guids = append(guids, c.CardGUID)
		}
		if forced {
			snapshot = append(snapshot, guids...)
		}
		localCards, err := p.storages.Cards.GetCards(ctx, deckID, guids)
		if err != nil {
			return err
		}

		if err = p.applier.ApplyCardPage(ctx, deckID, resp.Cards, localCards, resp.NoteTypes, protected, models.Checkpoint{}, false); err != nil {
			return err
		}

		fetched += len(resp.Cards)
		log.Debug().
			Int("offset", offset).
			Int("page_cards", len(resp.Cards)).
			Int("fetched", fetched).
			Int("total", resp.TotalCards).
			Msg("applied full-sync page")

		if !resp.HasMore {
			break
		}
		if resp.NextOffset > offset {
			offset = resp.NextOffset
		} else {
			offset += len(resp.Cards)
		}
	}

	cp := models.Checkpoint{
		DeckID:       deckID,
		LastChangeID: latestChangeID,
		DeckVersion:  deckVersion,
		AccessTier:   tier,
		LastSyncedAt: time.Now().UTC(),
	}
	if forced {
		// An explicit resync may legally move the checkpoint backwards. The
		// sweep of cards absent from the snapshot shares its transaction:
		// after a resync the projection holds exactly the snapshot's cards.
		if err := p.storages.Checkpoints.Reset(ctx, cp, snapshot); err != nil {
			return fmt.Errorf("reset checkpoint after forced resync: %w", err)
		}
	} else if err := p.storages.Checkpoints.Advance(ctx, cp); err != nil {
		return fmt.Errorf("write snapshot checkpoint for deck %s: %w", deckID, err)
	}

	log.Info().
		Int("cards", fetched).
		Str("checkpoint", latestChangeID).
		Str("deck_version", deckVersion).
		Msg("full sync complete")
	return nil
}
