// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/decksync/internal/logger"
)

type cycleCall struct {
	deckID    string
	forceFull bool
}

// stubSyncService stands in for the real sync service; a mock would create an
// import cycle between this package and internal/mock.
type stubSyncService struct {
	mu       sync.Mutex
	calls    []cycleCall
	unsubbed []string

	started chan cycleCall
	release chan struct{}
	block   bool
	err     error
}

func newStubSyncService() *stubSyncService {
	return &stubSyncService{
		started: make(chan cycleCall, 16),
		release: make(chan struct{}),
	}
}

func (s *stubSyncService) RunCycle(ctx context.Context, deckID string, forceFull bool) error {
	call := cycleCall{deckID: deckID, forceFull: forceFull}
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	s.started <- call
	if s.block {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.err
}

func (s *stubSyncService) Unsubscribe(_ context.Context, deckID string) error {
	s.mu.Lock()
	s.unsubbed = append(s.unsubbed, deckID)
	s.mu.Unlock()
	return nil
}

func (s *stubSyncService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func startScheduler(t *testing.T, stub *stubSyncService, interval time.Duration, maxWorkers int) Scheduler {
	t.Helper()
	sched := NewScheduler(stub, interval, maxWorkers, logger.Nop())
	go sched.Run(context.Background())
	t.Cleanup(sched.Stop)
	return sched
}

func waitForState(t *testing.T, sched Scheduler, deckID string, want DeckState) {
	t.Helper()
	require.Eventually(t, func() bool {
		st, ok := sched.Status(deckID)
		return ok && st.State == want
	}, 2*time.Second, 10*time.Millisecond, "deck %s never reached state %s", deckID, want)
}

func TestScheduler_ScheduledDeckSyncsImmediately(t *testing.T) {
	stub := newStubSyncService()
	sched := startScheduler(t, stub, time.Hour, 1)

	sched.Schedule("d1")

	select {
	case call := <-stub.started:
		assert.Equal(t, "d1", call.deckID)
		assert.False(t, call.forceFull)
	case <-time.After(2 * time.Second):
		t.Fatal("cycle never started")
	}
	waitForState(t, sched, "d1", DeckIdle)
}

func TestScheduler_TriggerWhileRunningIsNoop(t *testing.T) {
	stub := newStubSyncService()
	stub.block = true
	sched := startScheduler(t, stub, time.Hour, 1)

	sched.Schedule("d1")
	<-stub.started

	// The deck is mid-cycle; triggers must not queue a second run.
	sched.TriggerSync("d1", false)
	sched.TriggerSync("d1", true)
	close(stub.release)

	waitForState(t, sched, "d1", DeckIdle)
	assert.Equal(t, 1, stub.callCount())
}

func TestScheduler_TriggerForceFullPropagates(t *testing.T) {
	stub := newStubSyncService()
	sched := NewScheduler(stub, time.Hour, 1, logger.Nop())

	// Arrange the entry before the loop runs so the trigger lands first.
	sched.Schedule("d1")
	sched.TriggerSync("d1", true)

	go sched.Run(context.Background())
	t.Cleanup(sched.Stop)

	select {
	case call := <-stub.started:
		assert.True(t, call.forceFull)
	case <-time.After(2 * time.Second):
		t.Fatal("cycle never started")
	}
}

func TestScheduler_FailedCycleBacksOff(t *testing.T) {
	stub := newStubSyncService()
	stub.err = errBoom
	sched := startScheduler(t, stub, time.Hour, 1)

	before := time.Now()
	sched.Schedule("d1")
	<-stub.started

	waitForState(t, sched, "d1", DeckBackoff)
	st, ok := sched.Status("d1")
	require.True(t, ok)
	assert.Contains(t, st.LastError, "boom")
	assert.True(t, st.NextDue.After(before), "backoff must push the next attempt into the future")
}

func TestScheduler_DeckGoneIsUnscheduled(t *testing.T) {
	stub := newStubSyncService()
	stub.err = ErrDeckGone
	sched := startScheduler(t, stub, time.Hour, 1)

	sched.Schedule("d1")
	<-stub.started

	require.Eventually(t, func() bool {
		_, ok := sched.Status("d1")
		return !ok
	}, 2*time.Second, 10*time.Millisecond, "gone deck should drop out of the schedule")
}

func TestScheduler_UnscheduleUnknownDeck(t *testing.T) {
	stub := newStubSyncService()
	sched := NewScheduler(stub, time.Hour, 1, logger.Nop())

	err := sched.Unschedule(context.Background(), "never-scheduled")
	assert.ErrorIs(t, err, ErrNotScheduled)
	assert.Empty(t, stub.unsubbed)
}

func TestScheduler_UnscheduleDropsLocalState(t *testing.T) {
	stub := newStubSyncService()
	sched := NewScheduler(stub, time.Hour, 1, logger.Nop())

	sched.Schedule("d1")
	require.NoError(t, sched.Unschedule(context.Background(), "d1"))
	assert.Equal(t, []string{"d1"}, stub.unsubbed)

	_, ok := sched.Status("d1")
	assert.False(t, ok)
}

func TestScheduler_WorkerPoolBoundsConcurrency(t *testing.T) {
	stub := newStubSyncService()
	stub.block = true
	sched := startScheduler(t, stub, time.Hour, 2)

	sched.Schedule("d1")
	sched.Schedule("d2")
	sched.Schedule("d3")

	<-stub.started
	<-stub.started

	// Two workers are occupied; the third deck must wait.
	select {
	case call := <-stub.started:
		t.Fatalf("third cycle for %s started past the worker limit", call.deckID)
	case <-time.After(100 * time.Millisecond):
	}

	close(stub.release)
	select {
	case <-stub.started:
	case <-time.After(3 * time.Second):
		t.Fatal("queued deck never got a worker")
	}
}
