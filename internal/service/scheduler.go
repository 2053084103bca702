// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cardstream/decksync/internal/logger"
)

// DeckState is one scheduled deck's lifecycle state.
type DeckState string

const (
	// DeckIdle: synced, waiting for the next interval.
	DeckIdle DeckState = "idle"
	// DeckDue: a cycle should start as soon as a worker is free.
	DeckDue DeckState = "due"
	// DeckRunning: a cycle is in flight; further triggers are no-ops.
	DeckRunning DeckState = "running"
	// DeckBackoff: the last cycle failed; waiting out an exponential delay.
	DeckBackoff DeckState = "failed-backoff"
)

type deckEntry struct {
	state      DeckState
	due        time.Time
	forceFull  bool
	failures   int
	lastError  string
	lastSynced time.Time
}

type scheduler struct {
	syncSvc  DeckSyncService
	interval time.Duration
	logger   *logger.Logger

	mu    sync.Mutex
	decks map[string]*deckEntry

	sem    chan struct{}
	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewScheduler drives periodic and on-demand sync. At most maxWorkers cycles
// run concurrently across decks, and never more than one per deck.
func NewScheduler(syncSvc DeckSyncService, interval time.Duration, maxWorkers int, logger *logger.Logger) Scheduler {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &scheduler{
		syncSvc:  syncSvc,
		interval: interval,
		logger:   logger,
		decks:    make(map[string]*deckEntry),
		sem:      make(chan struct{}, maxWorkers),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Schedule adds the deck as immediately due, so a fresh subscription syncs
// right away rather than waiting out the first interval.
func (s *scheduler) Schedule(deckID string) {
	s.mu.Lock()
	if _, ok := s.decks[deckID]; !ok {
		s.decks[deckID] = &deckEntry{state: DeckDue, due: time.Now()}
	}
	s.mu.Unlock()
	s.poke()
}

func (s *scheduler) Unschedule(ctx context.Context, deckID string) error {
	s.mu.Lock()
	_, ok := s.decks[deckID]
	delete(s.decks, deckID)
	s.mu.Unlock()

	if !ok {
		return ErrNotScheduled
	}
	return s.syncSvc.Unsubscribe(ctx, deckID)
}

// TriggerSync marks the deck due now. A running cycle makes this a no-op:
// the in-flight cycle is already delivering the freshest state.
func (s *scheduler) TriggerSync(deckID string, forceFull bool) {
	s.mu.Lock()
	entry, ok := s.decks[deckID]
	if ok && entry.state != DeckRunning {
		entry.state = DeckDue
		entry.due = time.Now()
		entry.forceFull = entry.forceFull || forceFull
		entry.failures = 0
	}
	s.mu.Unlock()
	if ok {
		s.poke()
	}
}

func (s *scheduler) Status(deckID string) (SchedulerStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.decks[deckID]
	if !ok {
		return SchedulerStatus{}, false
	}
	return SchedulerStatus{
		DeckID:     deckID,
		State:      entry.state,
		LastError:  entry.lastError,
		LastSynced: entry.lastSynced,
		NextDue:    entry.due,
	}, true
}

// Run blocks until Stop or ctx cancellation. Due decks are dispatched on each
// tick and on each poke from Schedule/TriggerSync.
func (s *scheduler) Run(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	defer close(s.done)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		s.dispatchDue(ctx)

		select {
		case <-ctx.Done():
			s.wg.Wait()
			return
		case <-ticker.C:
		case <-s.wake:
		}
	}
}

func (s *scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *scheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *scheduler) dispatchDue(ctx context.Context) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for deckID, entry := range s.decks {
		if entry.state == DeckRunning || entry.due.After(now) {
			continue
		}

		select {
		case s.sem <- struct{}{}:
		default:
			// Worker pool is saturated; the deck stays due for the next pass.
			return
		}

		entry.state = DeckRunning
		forceFull := entry.forceFull
		entry.forceFull = false

		s.wg.Add(1)
		go s.runCycle(ctx, deckID, forceFull)
	}
}

func (s *scheduler) runCycle(ctx context.Context, deckID string, forceFull bool) {
	defer s.wg.Done()
	defer func() { <-s.sem }()

	err := s.syncSvc.RunCycle(ctx, deckID, forceFull)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.decks[deckID]
	if !ok {
		// Unscheduled while running.
		return
	}

	switch {
	case err == nil:
		entry.state = DeckIdle
		entry.failures = 0
		entry.lastError = ""
		entry.lastSynced = time.Now()
		entry.due = time.Now().Add(s.interval)

	case errors.Is(err, ErrDeckGone):
		s.logger.WithDeck(deckID).Warn().Msg("deck gone, removed from schedule")
		delete(s.decks, deckID)

	case errors.Is(err, context.Canceled):
		// Shutdown mid-cycle: progress up to the last committed page is kept.
		entry.state = DeckDue

	default:
		entry.failures++
		entry.state = DeckBackoff
		entry.lastError = err.Error()
		delay := backoffDelay(entry.failures)
		entry.due = time.Now().Add(delay)
		s.logger.WithDeck(deckID).Error().
			Err(err).
			Int("failures", entry.failures).
			Dur("retry_in", delay).
			Msg("sync cycle failed")
	}
}
