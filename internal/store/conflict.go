package store

import (
	"context"
	"fmt"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type conflictRepository struct {
	*DB
	logger *logger.Logger
}

func NewConflictRepository(db *DB, logger *logger.Logger) ConflictRepository {
	return &conflictRepository{DB: db, logger: logger}
}

func (r *conflictRepository) List(ctx context.Context, deckID string) ([]models.Conflict, error) {
	rows, err := r.QueryContext(ctx, listConflicts, deckID)
	if err != nil {
		return nil, fmt.Errorf("query conflicts for deck %s: %w", deckID, err)
	}
	defer rows.Close()

	var conflicts []models.Conflict
	for rows.Next() {
		var c models.Conflict
		if err = rows.Scan(
			&c.DeckID, &c.CardGUID, &c.FieldName, &c.LocalValue,
			&c.ServerValue, &c.IsProtected, &c.DetectedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conflict row: %w", err)
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, rows.Err()
}

func (r *conflictRepository) Resolve(ctx context.Context, deckID, cardGUID, fieldName string) error {
	if _, err := r.ExecContext(ctx, resolveConflict, deckID, cardGUID, fieldName); err != nil {
		return fmt.Errorf("resolve conflict %s/%s: %w", cardGUID, fieldName, err)
	}
	return nil
}
