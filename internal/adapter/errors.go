package adapter

import (
	"errors"
	"time"
)

var (
	// ErrBadRequest maps HTTP 400 — the request was malformed; not retryable.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401 after the refresh-and-retry has already
	// been spent; the caller must reauthenticate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccessDenied maps HTTP 403 — the deck is not owned or the tier is
	// insufficient. Fatal for the cycle; no local write may follow it.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound maps HTTP 404 — typically the deck no longer exists
	// server-side, which the sync engine treats as orphaned local state.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited maps HTTP 429. Retryable after the server-given delay.
	ErrRateLimited = errors.New("rate limited")

	// ErrServerUnavailable maps 5xx responses. Retryable with backoff.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse marks a structurally bad server payload. Not a
	// transient condition, so never retried automatically.
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrReauthRequired is returned by a CredentialsProvider that cannot
	// produce a usable token.
	ErrReauthRequired = errors.New("reauthentication required")
)

// RateLimitError wraps ErrRateLimited with the server's Retry-After delay.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string { return "rate limited" }

// Unwrap lets errors.Is(err, ErrRateLimited) match.
func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// Retryable reports whether err is a transport-level condition worth
// retrying within the same cycle (network failure, 429, 5xx).
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServerUnavailable) || errors.Is(err, ErrTransport)
}

// ErrTransport marks network-level failures (connection refused, timeout)
// before any HTTP status was received.
var ErrTransport = errors.New("transport failure")
