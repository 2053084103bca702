// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/store"
	"github.com/cardstream/decksync/models"
)

const protectedRejection = "blocked locally: field is protected"

type pushQueueService struct {
	server      adapter.ServerAdapter
	queue       store.PushQueueRepository
	guard       *ProtectedFieldGuard
	protected   ProtectedFieldProvider
	batchSize   int
	maxAttempts int
	logger      *logger.Logger
}

// NewPushQueueService builds the outbound half of the engine. Edits survive
// restarts in the queue table; Flush drains them in enqueue order, batchSize
// per request.
func NewPushQueueService(
	server adapter.ServerAdapter,
	queue store.PushQueueRepository,
	protected ProtectedFieldProvider,
	batchSize, maxAttempts int,
	logger *logger.Logger,
) PushQueueService {
	return &pushQueueService{
		server:      server,
		queue:       queue,
		guard:       NewProtectedFieldGuard(),
		protected:   protected,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (s *pushQueueService) Enqueue(ctx context.Context, edit models.LocalEdit) error {
	protected, err := s.protected.ProtectedFields(ctx, edit.DeckID)
	if err != nil {
		return err
	}
	if s.guard.BlocksOutbound(edit, protected) {
		return fmt.Errorf("%w: %s", ErrProtectedField, edit.FieldName)
	}

	if edit.ID == "" {
		edit.ID = uuid.NewString()
	}
	if edit.Kind == "" {
		edit.Kind = models.EditKindEdit
	}
	edit.Status = models.EditPending
	if edit.CreatedAt.IsZero() {
		edit.CreatedAt = time.Now().UTC()
	}
	return s.queue.Enqueue(ctx, edit)
}

// Flush submits pending edits until the queue drains or a batch fails. The
// protected set is re-read at flush time: a field protected after its edit was
// enqueued is rejected locally rather than sent.
func (s *pushQueueService) Flush(ctx context.Context, deckID string) (int, error) {
	log := s.logger.WithDeck(deckID)

	protected, err := s.protected.ProtectedFields(ctx, deckID)
	if err != nil {
		return 0, err
	}

	accepted := 0
	for {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}

		batch, err := s.queue.NextBatch(ctx, deckID, s.batchSize)
		if err != nil {
			return accepted, err
		}
		if len(batch) == 0 {
			return accepted, nil
		}

		allowed, blocked := s.guard.FilterOutbound(batch, protected)
		for _, edit := range blocked {
			if err = s.queue.MarkRejected(ctx, edit.ID, protectedRejection); err != nil {
				return accepted, err
			}
		}
		if len(allowed) == 0 {
			continue
		}

		// The batch ID is assigned once, before any attempt, so retries of
		// the same batch are de-duplicable server-side.
		outgoing := models.PushBatch{
			BatchID: uuid.NewString(),
			DeckID:  deckID,
			Edits:   allowed,
		}

		var resp models.PushResponse
		err = withRetry(ctx, log, s.maxAttempts, func() error {
			var pushErr error
			resp, pushErr = s.server.PushChanges(ctx, models.PushRequest{
				DeckID:  outgoing.DeckID,
				BatchID: outgoing.BatchID,
				Changes: outgoing.Edits,
				Version: outgoing.VersionHint,
			})
			return pushErr
		})
		if err != nil {
			// Nothing was marked: the whole batch stays pending for the next
			// flush.
			return accepted, fmt.Errorf("push batch of %d for deck %s: %w", len(allowed), deckID, err)
		}

		n, rejected, err := s.applyOutcomes(ctx, allowed, resp)
		if err != nil {
			return accepted, err
		}
		accepted += n

		log.Debug().
			Str("batch_id", outgoing.BatchID).
			Int("submitted", len(allowed)).
			Int("accepted", n).
			Int("rejected_server", rejected).
			Int("rejected_local", len(blocked)).
			Msg("pushed batch")

		// Items left pending (not mentioned by the server) wait for the next
		// flush; resubmitting them in the same flush would spin.
		if len(batch) < s.batchSize || n+rejected == 0 {
			return accepted, nil
		}
	}
}

// applyOutcomes marks each submitted edit accepted or rejected. A server that
// reports no per-item outcomes applied the batch atomically, so the aggregate
// verdict covers every item.
func (s *pushQueueService) applyOutcomes(ctx context.Context, submitted []models.LocalEdit, resp models.PushResponse) (accepted, rejected int, err error) {
	if len(resp.Outcomes) == 0 {
		ids := make([]string, len(submitted))
		for i, e := range submitted {
			ids[i] = e.ID
		}
		if err = s.queue.MarkAccepted(ctx, ids); err != nil {
			return 0, 0, err
		}
		return len(ids), 0, nil
	}

	// Outcomes may address edits by ID or by card+field; index both ways.
	byID := make(map[string]models.LocalEdit, len(submitted))
	byKey := make(map[string]models.LocalEdit, len(submitted))
	for _, e := range submitted {
		byID[e.ID] = e
		byKey[e.CardGUID+"\x00"+e.FieldName] = e
	}

	var acceptedIDs []string
	for _, out := range resp.Outcomes {
		edit, ok := byID[out.EditID]
		if !ok {
			edit, ok = byKey[out.CardGUID+"\x00"+out.Field]
		}
		if !ok {
			continue
		}

		if out.Accepted {
			acceptedIDs = append(acceptedIDs, edit.ID)
			continue
		}
		reason := out.Reason
		if reason == "" {
			reason = "rejected by server"
		}
		if err = s.queue.MarkRejected(ctx, edit.ID, reason); err != nil {
			return 0, 0, err
		}
		rejected++
	}

	// Items the server did not mention stay pending for the next flush.
	if len(acceptedIDs) > 0 {
		if err = s.queue.MarkAccepted(ctx, acceptedIDs); err != nil {
			return 0, rejected, err
		}
	}
	return len(acceptedIDs), rejected, nil
}

func (s *pushQueueService) Rejected(ctx context.Context, deckID string) ([]models.LocalEdit, error) {
	return s.queue.ListRejected(ctx, deckID)
}

func (s *pushQueueService) Resubmit(ctx context.Context, ids []string) error {
	return s.queue.Resubmit(ctx, ids)
}
