package service

import (
	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
)

type Services struct {
	Sync      DeckSyncService
	Push      PushQueueService
	State     StateSyncService
	Media     MediaSyncService
	NoteTypes NoteTypeSyncService
	Protected *StaticProtectedFields
	Scheduler Scheduler
}

func NewServices(server adapter.ServerAdapter, storages *store.Storages, cfg config.Sync, mediaDir string, logger *logger.Logger) *Services {
	protected := NewStaticProtectedFields(cfg.ProtectedFields)

	pushSvc := NewPushQueueService(server, storages.PushQueue, protected, cfg.PushBatchSize, cfg.MaxRetries, logger)
	syncSvc := NewDeckSyncService(server, storages, pushSvc, protected, cfg.PageSize, cfg.MaxRetries, logger)

	return &Services{
		Sync:      syncSvc,
		Push:      pushSvc,
		State:     NewStateSyncService(server, storages.Cards, cfg.MaxRetries, logger),
		Media:     NewMediaSyncService(server, storages.Media, mediaDir, cfg.MaxRetries, logger),
		NoteTypes: NewNoteTypeSyncService(server, storages.NoteTypes, cfg.MaxRetries, logger),
		Protected: protected,
		Scheduler: NewScheduler(syncSvc, cfg.Interval, cfg.MaxWorkers, logger),
	}
}
