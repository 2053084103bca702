// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type cardRepository struct {
	*DB
	logger *logger.Logger
}

func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	return &cardRepository{DB: db, logger: logger}
}

func (r *cardRepository) GetCard(ctx context.Context, deckID, cardGUID string) (models.Card, error) {
	row := r.QueryRowContext(ctx, getCard, deckID, cardGUID)
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("deck_id", deckID).
			Str("card_guid", cardGUID).
			Msg("failed to read card")
		return models.Card{}, fmt.Errorf("get card %s: %w", cardGUID, err)
	}
	return card, nil
}

func (r *cardRepository) GetCards(ctx context.Context, deckID string, guids []string) (map[string]models.Card, error) {
	cards := make(map[string]models.Card, len(guids))
	if len(guids) == 0 {
		return cards, nil
	}

	query, args, err := sq.Select(
		"deck_id", "card_guid", "note_type", "fields", "tags", "subdeck_path",
		"is_suspended", "is_buried", "deleted", "updated_at",
	).
		From("cards").
		Where(sq.Eq{"deck_id": deckID, "card_guid": guids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cards query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan card row: %w", scanErr)
		}
		cards[card.CardGUID] = card
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card rows: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) CountCards(ctx context.Context, deckID string) (int, error) {
	var count int
	if err := r.QueryRowContext(ctx, countCards, deckID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cards for deck %s: %w", deckID, err)
	}
	return count, nil
}

func (r *cardRepository) ListSuspendStates(ctx context.Context, deckID string) ([]models.SuspendChange, error) {
	rows, err := r.QueryContext(ctx, listSuspendStates, deckID)
	if err != nil {
		return nil, fmt.Errorf("query suspend states: %w", err)
	}
	defer rows.Close()

	var states []models.SuspendChange
	for rows.Next() {
		var st models.SuspendChange
		if err = rows.Scan(&st.CardGUID, &st.IsSuspended, &st.IsBuried); err != nil {
			return nil, fmt.Errorf("scan suspend state: %w", err)
		}
		states = append(states, st)
	}
	return states, rows.Err()
}

func (r *cardRepository) SetSuspendStates(ctx context.Context, deckID string, changes []models.SuspendChange) error {
	return r.withinTx(ctx, func(tx *sql.Tx) error {
		for _, ch := range changes {
			if _, err := tx.ExecContext(ctx, setSuspendState,
				ch.IsSuspended, ch.IsBuried, deckID, ch.CardGUID,
			); err != nil {
				return fmt.Errorf("set suspend state for %s: %w", ch.CardGUID, err)
			}
		}
		return nil
	})
}

// ApplyTagChanges merges additions and removals into each card's tag set.
// Cards missing locally are skipped; tag sync never creates cards.
func (r *cardRepository) ApplyTagChanges(ctx context.Context, deckID string, changes []models.TagChange) error {
	guids := make([]string, 0, len(changes))
	for _, ch := range changes {
		guids = append(guids, ch.CardGUID)
	}
	cards, err := r.GetCards(ctx, deckID, guids)
	if err != nil {
		return err
	}

	return r.withinTx(ctx, func(tx *sql.Tx) error {
		for _, ch := range changes {
			card, ok := cards[ch.CardGUID]
			if !ok {
				continue
			}
			for _, tag := range ch.Added {
				card.AddTag(tag)
			}
			for _, tag := range ch.Removed {
				card.RemoveTag(tag)
			}
			if err := upsertCardTx(ctx, tx, &card); err != nil {
				return err
			}
		}
		return nil
	})
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (models.Card, error) {
	var card models.Card
	var fields, tags string

	err := row.Scan(
		&card.DeckID, &card.CardGUID, &card.NoteType, &fields, &tags,
		&card.SubdeckPath, &card.IsSuspended, &card.IsBuried, &card.Deleted,
		&card.UpdatedAt,
	)
	if err != nil {
		return models.Card{}, err
	}

	if err = json.Unmarshal([]byte(fields), &card.Fields); err != nil {
		return models.Card{}, fmt.Errorf("decode fields for card %s: %w", card.CardGUID, err)
	}
	if err = json.Unmarshal([]byte(tags), &card.Tags); err != nil {
		return models.Card{}, fmt.Errorf("decode tags for card %s: %w", card.CardGUID, err)
	}
	return card, nil
}
