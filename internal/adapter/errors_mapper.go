package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cardstream/decksync/models"
)

// mapHTTPError converts a non-2xx response into one of the package sentinel
// errors, preserving the server's {"success":false,"message":...} text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, msg)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", msg, &RateLimitError{RetryAfter: retryAfter(resp)})
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, resp.StatusCode(), msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage extracts the uniform error envelope's message, falling back to
// the raw (trimmed) body.
func errorMessage(body []byte) string {
	var envelope models.APIError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		text = "no response body"
	}
	return text
}

func retryAfter(resp *resty.Response) time.Duration {
	const fallback = 60 * time.Second

	raw := resp.Header().Get("Retry-After")
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
