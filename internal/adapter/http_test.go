// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

func newTestAdapter(t *testing.T, serverURL string, creds CredentialsProvider) *httpServerAdapter {
	t.Helper()
	if creds == nil {
		creds = StaticCredentials("test-token")
	}
	adapterCfg := config.Adapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, creds, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── PullChanges ─────────────────────────────────────────────────────────────

func TestPullChanges_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/addon-pull-changes", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req models.PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "d1", req.DeckID)
		assert.Equal(t, "42", req.LastChangeID)
		assert.False(t, req.FullSync)

		_ = json.NewEncoder(w).Encode(models.PullResponse{
			Success: true,
			Changes: []models.Change{
				{ChangeID: "43", CardGUID: "g1", FieldName: "Front", NewValue: "hola", ChangeType: models.ChangeModify},
			},
			LatestChangeID: "43",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.PullChanges(context.Background(), models.PullRequest{DeckID: "d1", LastChangeID: "42", Limit: 100})

	require.NoError(t, err)
	require.Len(t, got.Changes, 1)
	assert.Equal(t, "43", got.LatestChangeID)
}

func TestPullChanges_InvalidChangeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.PullResponse{
			Success: true,
			Changes: []models.Change{
				{ChangeID: "43", ChangeType: models.ChangeModify}, // no card guid
			},
			LatestChangeID: "43",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.PullChanges(context.Background(), models.PullRequest{DeckID: "d1"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPullChanges_FailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.APIError{Success: false, Message: "deck is being rebuilt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.PullChanges(context.Background(), models.PullRequest{DeckID: "d1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "deck is being rebuilt")
}

func TestPullChanges_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.PullChanges(context.Background(), models.PullRequest{DeckID: "d1"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── PullCards ───────────────────────────────────────────────────────────────

func TestPullCards_SetsFullSyncCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.FullSync)
		assert.Equal(t, 1000, req.Offset)

		_ = json.NewEncoder(w).Encode(models.FullPullResponse{
			Success:        true,
			Cards:          []models.Card{{CardGUID: "g1", DeckID: "d1"}},
			TotalCards:     2350,
			HasMore:        true,
			NextOffset:     2000,
			LatestChangeID: "500",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.PullCards(context.Background(), models.PullRequest{DeckID: "d1", Offset: 1000, Limit: 1000})

	require.NoError(t, err)
	assert.Equal(t, 2000, got.NextOffset)
	assert.True(t, got.HasMore)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestPost_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"forbidden", http.StatusForbidden, ErrAccessDenied},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrServerUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrServerUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(models.APIError{Success: false, Message: tt.name})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			_, err := a.PushChanges(context.Background(), models.PushRequest{DeckID: "d1"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPost_RateLimitCarriesRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.PushChanges(context.Background(), models.PushRequest{DeckID: "d1"})

	var rateLimit *RateLimitError
	require.ErrorAs(t, err, &rateLimit)
	assert.Equal(t, 7*time.Second, rateLimit.RetryAfter)
}

// ── Token refresh ───────────────────────────────────────────────────────────

// retryCreds counts refreshes and swaps to a second token.
type retryCreds struct {
	token     atomic.Value
	refreshes atomic.Int32
}

func newRetryCreds(initial string) *retryCreds {
	c := &retryCreds{}
	c.token.Store(initial)
	return c
}

func (c *retryCreds) AccessToken(context.Context) (string, error) {
	return c.token.Load().(string), nil
}

func (c *retryCreds) Refresh(context.Context) (string, error) {
	c.refreshes.Add(1)
	c.token.Store("fresh-token")
	return "fresh-token", nil
}

func TestPost_RefreshesOnceOn401(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(models.PushResponse{Success: true})
	}))
	defer srv.Close()

	creds := newRetryCreds("stale-token")
	a := newTestAdapter(t, srv.URL, creds)
	_, err := a.PushChanges(context.Background(), models.PushRequest{DeckID: "d1"})

	require.NoError(t, err)
	assert.Equal(t, int32(1), creds.refreshes.Load())
	assert.Equal(t, int32(1), calls.Load())
}

func TestPost_PersistentUnauthorizedNeedsReauth(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := newRetryCreds("revoked")
	a := newTestAdapter(t, srv.URL, creds)
	_, err := a.PushChanges(context.Background(), models.PushRequest{DeckID: "d1"})

	assert.ErrorIs(t, err, ErrReauthRequired)
	assert.Equal(t, int32(2), attempts.Load(), "one refresh-and-retry, then give up")
}

// ── Media transfer ──────────────────────────────────────────────────────────

func TestDownloadFile_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Signed URLs are unauthenticated from the client's point of view.
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("file-bytes"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.DownloadFile(context.Background(), srv.URL+"/media/abc")

	require.NoError(t, err)
	assert.Equal(t, []byte("file-bytes"), got)
}

func TestDownloadFile_EmptyBodyIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.DownloadFile(context.Background(), srv.URL+"/media/abc")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestUploadFile_PutsContent(t *testing.T) {
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	err := a.UploadFile(context.Background(), srv.URL+"/upload/abc", []byte("content"))

	require.NoError(t, err)
	assert.Equal(t, []byte("content"), got)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://sync.example.com", want: "https://sync.example.com"},
		{in: "sync.example.com", want: "https://sync.example.com"},
		{in: "https://sync.example.com/", want: "https://sync.example.com"},
		{in: "http://localhost:8080", want: "http://localhost:8080"},
		{in: "  https://sync.example.com  ", want: "https://sync.example.com"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
