// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type pushQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewPushQueueRepository(db *DB, logger *logger.Logger) PushQueueRepository {
	return &pushQueueRepository{DB: db, logger: logger}
}

func (r *pushQueueRepository) Enqueue(ctx context.Context, edit models.LocalEdit) error {
	createdAt := edit.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := r.ExecContext(ctx, enqueueEdit,
		edit.ID, edit.DeckID, edit.CardGUID, edit.FieldName,
		edit.OldValue, edit.NewValue, edit.Kind, edit.Reason, createdAt,
	); err != nil {
		r.logger.Err(err).
			Str("deck_id", edit.DeckID).
			Str("card_guid", edit.CardGUID).
			Msg("failed to enqueue local edit")
		return fmt.Errorf("enqueue edit %s: %w", edit.ID, err)
	}
	return nil
}

func (r *pushQueueRepository) NextBatch(ctx context.Context, deckID string, limit int) ([]models.LocalEdit, error) {
	return r.queryEdits(ctx, nextPushBatch, deckID, limit)
}

func (r *pushQueueRepository) ListRejected(ctx context.Context, deckID string) ([]models.LocalEdit, error) {
	return r.queryEdits(ctx, listRejectedEdits, deckID)
}

func (r *pushQueueRepository) MarkAccepted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Delete("push_queue").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build accept query: %w", err)
	}
	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove accepted edits: %w", err)
	}
	return nil
}

func (r *pushQueueRepository) MarkRejected(ctx context.Context, id, reason string) error {
	query, args, err := sq.Update("push_queue").
		Set("status", string(models.EditRejected)).
		Set("rejection", reason).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reject query: %w", err)
	}
	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark edit %s rejected: %w", id, err)
	}
	return nil
}

func (r *pushQueueRepository) Resubmit(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("push_queue").
		Set("status", string(models.EditPending)).
		Set("rejection", "").
		Where(sq.Eq{"id": ids, "status": string(models.EditRejected)}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build resubmit query: %w", err)
	}
	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("resubmit edits: %w", err)
	}
	return nil
}

func (r *pushQueueRepository) PendingCount(ctx context.Context, deckID string) (int, error) {
	var count int
	if err := r.QueryRowContext(ctx, countPendingEdits, deckID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending edits for deck %s: %w", deckID, err)
	}
	return count, nil
}

func (r *pushQueueRepository) queryEdits(ctx context.Context, query string, args ...any) ([]models.LocalEdit, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query push queue: %w", err)
	}
	defer rows.Close()

	var edits []models.LocalEdit
	for rows.Next() {
		edit, scanErr := scanEdit(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		edits = append(edits, edit)
	}
	return edits, rows.Err()
}

func scanEdit(rows *sql.Rows) (models.LocalEdit, error) {
	var edit models.LocalEdit
	var kind, status string

	err := rows.Scan(
		&edit.ID, &edit.DeckID, &edit.CardGUID, &edit.FieldName,
		&edit.OldValue, &edit.NewValue, &kind, &edit.Reason,
		&status, &edit.Rejection, &edit.CreatedAt,
	)
	if err != nil {
		return models.LocalEdit{}, fmt.Errorf("scan push queue row: %w", err)
	}

	edit.Kind = models.EditKind(kind)
	edit.Status = models.EditStatus(status)
	return edit, nil
}
