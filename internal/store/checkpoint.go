// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type checkpointRepository struct {
	*DB
	logger *logger.Logger
}

func NewCheckpointRepository(db *DB, logger *logger.Logger) CheckpointRepository {
	return &checkpointRepository{DB: db, logger: logger}
}

func (r *checkpointRepository) Get(ctx context.Context, deckID string) (models.Checkpoint, error) {
	var cp models.Checkpoint
	row := r.QueryRowContext(ctx, getCheckpoint, deckID)
	err := row.Scan(&cp.DeckID, &cp.LastChangeID, &cp.DeckVersion, &cp.AccessTier, &cp.LastSyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Checkpoint{}, ErrCheckpointNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("deck_id", deckID).Msg("failed to read checkpoint")
		return models.Checkpoint{}, fmt.Errorf("get checkpoint for deck %s: %w", deckID, err)
	}
	return cp, nil
}

// Advance writes cp only when it is strictly ahead of the stored checkpoint.
// The read-compare-write runs in one transaction so that two racing cycles
// cannot both pass the staleness check.
func (r *checkpointRepository) Advance(ctx context.Context, cp models.Checkpoint) error {
	return r.withinTx(ctx, func(tx *sql.Tx) error {
		return advanceCheckpointTx(ctx, tx, cp)
	})
}

// Reset force-writes cp and drops the deck's applied-change markers. The old
// dedup set belongs to the old baseline and would wrongly suppress changes
// reissued after the reset. When snapshot is non-nil, cards absent from it
// are tombstoned in the same transaction: a resync snapshot is complete by
// contract, so anything it omits was deleted server-side.
func (r *checkpointRepository) Reset(ctx context.Context, cp models.Checkpoint, snapshot []string) error {
	return r.withinTx(ctx, func(tx *sql.Tx) error {
		if snapshot != nil {
			guids, err := json.Marshal(snapshot)
			if err != nil {
				return fmt.Errorf("encode snapshot guids: %w", err)
			}
			if _, err = tx.ExecContext(ctx, sweepAbsentCards, time.Now().UTC(), cp.DeckID, string(guids)); err != nil {
				return fmt.Errorf("sweep cards absent from snapshot for deck %s: %w", cp.DeckID, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM applied_changes WHERE deck_id = $1;`, cp.DeckID); err != nil {
			return fmt.Errorf("drop applied changes for deck %s: %w", cp.DeckID, err)
		}
		if _, err := tx.ExecContext(ctx, upsertCheckpoint,
			cp.DeckID, cp.LastChangeID, cp.DeckVersion, cp.AccessTier, cp.LastSyncedAt,
		); err != nil {
			return fmt.Errorf("reset checkpoint: %w", err)
		}
		return nil
	})
}

func (r *checkpointRepository) Clear(ctx context.Context, deckID string) error {
	err := r.withinTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range clearDeckStatements {
			if _, execErr := tx.ExecContext(ctx, stmt, deckID); execErr != nil {
				return fmt.Errorf("clear deck %s: %w", deckID, execErr)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("deck_id", deckID).Msg("failed to clear local deck state")
		return err
	}

	r.logger.Info().Str("deck_id", deckID).Msg("cleared local deck state")
	return nil
}

// advanceCheckpointTx is shared with SyncRepository.ApplyPage so that a page
// commit and its checkpoint advance happen in the same transaction.
func advanceCheckpointTx(ctx context.Context, tx *sql.Tx, cp models.Checkpoint) error {
	var prev models.Checkpoint
	row := tx.QueryRowContext(ctx, getCheckpoint, cp.DeckID)
	err := row.Scan(&prev.DeckID, &prev.LastChangeID, &prev.DeckVersion, &prev.AccessTier, &prev.LastSyncedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First checkpoint for the deck.
	case err != nil:
		return fmt.Errorf("read previous checkpoint: %w", err)
	default:
		if !cp.IsAheadOf(prev) {
			return fmt.Errorf("deck %s at %q, proposed %q: %w",
				cp.DeckID, prev.LastChangeID, cp.LastChangeID, ErrStaleCheckpoint)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertCheckpoint,
		cp.DeckID, cp.LastChangeID, cp.DeckVersion, cp.AccessTier, cp.LastSyncedAt,
	); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return nil
}
