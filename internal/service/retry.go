package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/logger"
)

const (
	backoffBase = time.Second
	backoffCap  = 32 * time.Second
)

// backoffDelay computes the exponential backoff for a 0-indexed attempt with
// jitter in [0.5, 1.0) of the raw delay.
func backoffDelay(attempt int) time.Duration {
	delay := backoffBase << attempt
	if delay > backoffCap || delay <= 0 {
		delay = backoffCap
	}
	return time.Duration(float64(delay) * (0.5 + rand.Float64()*0.5))
}

// withRetry runs fn up to maxAttempts times, sleeping between attempts on
// retryable transport failures. A rate-limit error waits the server-given
// Retry-After instead of the computed backoff. Non-retryable errors return
// immediately.
func withRetry(ctx context.Context, log *logger.Logger, maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !adapter.Retryable(err) || attempt == maxAttempts-1 {
			return err
		}

		delay := backoffDelay(attempt)
		var rateLimit *adapter.RateLimitError
		if errors.As(err, &rateLimit) {
			delay = rateLimit.RetryAfter
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retryable transport failure, backing off")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
