package service

import (
	"context"
	"fmt"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

type noteTypeSyncService struct {
	server      adapter.ServerAdapter
	noteTypes   store.NoteTypeRepository
	maxAttempts int
	logger      *logger.Logger
}

// NewNoteTypeSyncService fetches and publishes note-type definitions. These
// are written verbatim on both sides; protection applies to card fields, not
// to templates or styling.
func NewNoteTypeSyncService(server adapter.ServerAdapter, noteTypes store.NoteTypeRepository, maxAttempts int, logger *logger.Logger) NoteTypeSyncService {
	return &noteTypeSyncService{server: server, noteTypes: noteTypes, maxAttempts: maxAttempts, logger: logger}
}

func (s *noteTypeSyncService) PullNoteTypes(ctx context.Context, deckID string) ([]models.NoteType, error) {
	log := s.logger.WithDeck(deckID)

	var resp models.NoteTypeSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var ntErr error
		resp, ntErr = s.server.SyncNoteTypes(ctx, models.NoteTypeSyncRequest{
			DeckID: deckID,
			Action: models.ActionGet,
		})
		return ntErr
	})
	if err != nil {
		return nil, fmt.Errorf("pull note types for deck %s: %w", deckID, err)
	}
	if len(resp.NoteTypes) == 0 {
		return nil, nil
	}

	if err = s.noteTypes.SaveNoteTypes(ctx, deckID, resp.NoteTypes); err != nil {
		return nil, err
	}
	log.Debug().Int("note_types", len(resp.NoteTypes)).Msg("saved note types")
	return resp.NoteTypes, nil
}

func (s *noteTypeSyncService) PushNoteTypes(ctx context.Context, deckID string, types []models.NoteType) (int, error) {
	if len(types) == 0 {
		return 0, nil
	}
	log := s.logger.WithDeck(deckID)

	var resp models.NoteTypeSyncResponse
	err := withRetry(ctx, log, s.maxAttempts, func() error {
		var ntErr error
		resp, ntErr = s.server.SyncNoteTypes(ctx, models.NoteTypeSyncRequest{
			DeckID:    deckID,
			Action:    models.ActionPush,
			NoteTypes: types,
		})
		return ntErr
	})
	if err != nil {
		return 0, fmt.Errorf("push note types for deck %s: %w", deckID, err)
	}
	return resp.TypesUpdated, nil
}
