// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type syncRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	return &syncRepository{DB: db, logger: logger}
}

func (r *syncRepository) FilterApplied(ctx context.Context, deckID string, changeIDs []string) (map[string]struct{}, error) {
	applied := make(map[string]struct{}, len(changeIDs))
	if len(changeIDs) == 0 {
		return applied, nil
	}

	query, args, err := sq.Select("change_id").
		From("applied_changes").
		Where(sq.Eq{"deck_id": deckID, "change_id": changeIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build applied-changes query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applied changes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan applied change id: %w", err)
		}
		applied[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied changes: %w", err)
	}
	return applied, nil
}

// ApplyPage commits the whole page or nothing. The checkpoint advance runs in
// the same transaction, so the stored checkpoint always corresponds to a
// fully-applied page even if the process dies mid-cycle.
func (r *syncRepository) ApplyPage(ctx context.Context, params ApplyPageParams) error {
	now := time.Now().UTC()

	err := r.withinTx(ctx, func(tx *sql.Tx) error {
		for i := range params.Upserts {
			if err := upsertCardTx(ctx, tx, &params.Upserts[i]); err != nil {
				return err
			}
		}

		for _, guid := range params.Tombstones {
			if _, err := tx.ExecContext(ctx, tombstoneCard, now, params.DeckID, guid); err != nil {
				return fmt.Errorf("tombstone card %s: %w", guid, err)
			}
		}

		for _, nt := range params.NoteTypes {
			if err := upsertNoteTypeTx(ctx, tx, params.DeckID, nt); err != nil {
				return err
			}
		}

		for _, changeID := range params.ChangeIDs {
			if _, err := tx.ExecContext(ctx, insertAppliedChange, params.DeckID, changeID, now); err != nil {
				return fmt.Errorf("record applied change %s: %w", changeID, err)
			}
		}

		for _, c := range params.Conflicts {
			if _, err := tx.ExecContext(ctx, insertConflict,
				c.DeckID, c.CardGUID, c.FieldName, c.LocalValue,
				c.ServerValue, c.IsProtected, c.DetectedAt,
			); err != nil {
				return fmt.Errorf("record conflict %s/%s: %w", c.CardGUID, c.FieldName, err)
			}
		}

		if params.AdvanceCheckpoint {
			return advanceCheckpointTx(ctx, tx, params.Checkpoint)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("deck_id", params.DeckID).
		Int("upserts", len(params.Upserts)).
		Int("tombstones", len(params.Tombstones)).
		Int("conflicts", len(params.Conflicts)).
		Str("checkpoint", params.Checkpoint.LastChangeID).
		Msg("applied sync page")
	return nil
}

func upsertCardTx(ctx context.Context, tx *sql.Tx, card *models.Card) error {
	fields, err := json.Marshal(card.Fields)
	if err != nil {
		return fmt.Errorf("encode fields for card %s: %w", card.CardGUID, err)
	}
	tags, err := json.Marshal(card.Tags)
	if err != nil {
		return fmt.Errorf("encode tags for card %s: %w", card.CardGUID, err)
	}

	updatedAt := card.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err = tx.ExecContext(ctx, upsertCard,
		card.DeckID, card.CardGUID, card.NoteType, string(fields), string(tags),
		card.SubdeckPath, card.IsSuspended, card.IsBuried, card.Deleted, updatedAt,
	); err != nil {
		return fmt.Errorf("upsert card %s: %w", card.CardGUID, err)
	}
	return nil
}

func upsertNoteTypeTx(ctx context.Context, tx *sql.Tx, deckID string, nt models.NoteType) error {
	fields, err := json.Marshal(nt.Fields)
	if err != nil {
		return fmt.Errorf("encode note type fields %s: %w", nt.ID, err)
	}

	if _, err = tx.ExecContext(ctx, upsertNoteType,
		deckID, nt.ID, nt.Name, string(fields), nt.Templates, nt.CSS,
	); err != nil {
		return fmt.Errorf("upsert note type %s: %w", nt.ID, err)
	}
	return nil
}
