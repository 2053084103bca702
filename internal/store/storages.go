package store

import (
	"context"
	"fmt"

	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
)

// Storages groups every local repository into a single value passed to the
// service layer.
type Storages struct {
	Checkpoints CheckpointRepository
	Sync        SyncRepository
	Cards       CardRepository
	Conflicts   ConflictRepository
	PushQueue   PushQueueRepository
	NoteTypes   NoteTypeRepository
	Media       MediaRepository
}

// NewStorages opens the local SQLite database, runs pending migrations and
// wires up all repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Checkpoints: NewCheckpointRepository(db, log),
		Sync:        NewSyncRepository(db, log),
		Cards:       NewCardRepository(db, log),
		Conflicts:   NewConflictRepository(db, log),
		PushQueue:   NewPushQueueRepository(db, log),
		NoteTypes:   NewNoteTypeRepository(db, log),
		Media:       NewMediaRepository(db, log),
	}, nil
}
