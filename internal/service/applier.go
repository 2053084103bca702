// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

// LocalApplier turns a page of resolved changes into one transactional
// commit against the local store. Every change in the page — applied,
// conflicted or skipped by protection — is consumed: its change_id joins the
// dedup set so a resumed cycle never re-evaluates it.
type LocalApplier struct {
	syncRepo store.SyncRepository
	logger   *logger.Logger
}

func NewLocalApplier(syncRepo store.SyncRepository, logger *logger.Logger) *LocalApplier {
	return &LocalApplier{syncRepo: syncRepo, logger: logger}
}

// ApplyResolved commits one page of resolutions. localCards holds the
// current local state of every card the page touches (missing entries mean
// the card does not exist yet). The checkpoint is advanced in the same
// transaction when advance is set.
func (a *LocalApplier) ApplyResolved(
	ctx context.Context,
	deckID string,
	resolutions []Resolution,
	localCards map[string]models.Card,
	checkpoint models.Checkpoint,
	advance bool,
) error {
	working := make(map[string]*models.Card, len(localCards))
	tombstoned := make(map[string]struct{})

	params := store.ApplyPageParams{
		DeckID:            deckID,
		Checkpoint:        checkpoint,
		AdvanceCheckpoint: advance,
	}

	for _, res := range resolutions {
		params.ChangeIDs = append(params.ChangeIDs, res.Change.ChangeID)

		switch res.Kind {
		case ResolutionSkipProtected:
			continue

		case ResolutionConflict:
			params.Conflicts = append(params.Conflicts, res.Conflict)
			// Server wins: fall through to apply new_value.
		}

		change := res.Change
		switch change.ChangeType {
		case models.ChangeDelete:
			tombstoned[change.CardGUID] = struct{}{}
			delete(working, change.CardGUID)

		case models.ChangeAdd, models.ChangeModify:
			card := working[change.CardGUID]
			if card == nil {
				card = workingCopy(deckID, change.CardGUID, localCards)
				working[change.CardGUID] = card
			}
			delete(tombstoned, change.CardGUID)
			card.Deleted = false
			card.SetField(change.FieldName, change.NewValue)
			card.UpdatedAt = time.Now().UTC()

		default:
			return fmt.Errorf("unknown change type %q for change %s", change.ChangeType, change.ChangeID)
		}
	}

	for _, card := range working {
		params.Upserts = append(params.Upserts, *card)
	}
	for guid := range tombstoned {
		params.Tombstones = append(params.Tombstones, guid)
	}

	return a.syncRepo.ApplyPage(ctx, params)
}

// ApplyCardPage commits one full-sync page of complete cards, replacing
// whatever the local projection held for them, except that locally protected
// field values survive: a full sync must not bypass the protected-field rule.
func (a *LocalApplier) ApplyCardPage(
	ctx context.Context,
	deckID string,
	cards []models.Card,
	localCards map[string]models.Card,
	noteTypes []models.NoteType,
	protected models.ProtectedFieldSet,
	checkpoint models.Checkpoint,
	advance bool,
) error {
	params := store.ApplyPageParams{
		DeckID:            deckID,
		NoteTypes:         noteTypes,
		Checkpoint:        checkpoint,
		AdvanceCheckpoint: advance,
	}

	for _, incoming := range cards {
		card := incoming
		card.DeckID = deckID
		if local, ok := localCards[card.CardGUID]; ok {
			for field := range protected {
				if v, exists := local.Field(field); exists {
					card.SetField(field, v)
				}
			}
			// Suspend/bury/tag state is locally authoritative until pushed.
			card.IsSuspended = local.IsSuspended
			card.IsBuried = local.IsBuried
			if len(local.Tags) > 0 {
				card.Tags = local.Tags
			}
		}
		params.Upserts = append(params.Upserts, card)
	}

	return a.syncRepo.ApplyPage(ctx, params)
}

func workingCopy(deckID, cardGUID string, localCards map[string]models.Card) *models.Card {
	if local, ok := localCards[cardGUID]; ok {
		clone := local
		clone.Fields = make(map[string]string, len(local.Fields))
		for k, v := range local.Fields {
			clone.Fields[k] = v
		}
		clone.Tags = append([]string(nil), local.Tags...)
		return &clone
	}
	return &models.Card{DeckID: deckID, CardGUID: cardGUID}
}
