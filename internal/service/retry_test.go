package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
)

func TestBackoffDelay_Bounds(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		raw := backoffBase << attempt
		if raw > backoffCap || raw <= 0 {
			raw = backoffCap
		}
		for i := 0; i < 50; i++ {
			d := backoffDelay(attempt)
			assert.GreaterOrEqual(t, d, raw/2, "attempt %d", attempt)
			assert.Less(t, d, raw, "attempt %d", attempt)
		}
	}
}

func TestBackoffDelay_CapsAtMax(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.LessOrEqual(t, backoffDelay(40), backoffCap)
	}
}

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), logger.Nop(), 3, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_NonRetryableFailsFast(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), logger.Nop(), 5, func() error {
		calls++
		return adapter.ErrAccessDenied
	})
	assert.ErrorIs(t, err, adapter.ErrAccessDenied)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetryableEventuallySucceeds(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), logger.Nop(), 5, func() error {
		calls++
		if calls < 3 {
			return adapter.ErrServerUnavailable
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), logger.Nop(), 2, func() error {
		calls++
		return adapter.ErrServerUnavailable
	})
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_RateLimitWaitsRetryAfter(t *testing.T) {
	calls := 0
	start := time.Now()
	err := withRetry(context.Background(), logger.Nop(), 2, func() error {
		calls++
		if calls == 1 {
			return &adapter.RateLimitError{RetryAfter: 50 * time.Millisecond}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWithRetry_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err := withRetry(ctx, logger.Nop(), 5, func() error {
		calls++
		return adapter.ErrServerUnavailable
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
