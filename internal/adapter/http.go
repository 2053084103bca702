// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/models"
)

type httpServerAdapter struct {
	client *resty.Client
	creds  CredentialsProvider
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTPS/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying client with the resolved
// base URL and request timeout. Credentials come from creds on every call; no
// token is stored on the adapter itself.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, creds CredentialsProvider, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, creds: creds, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PullChanges implements [ServerAdapter]. It POSTs the pull criteria to
// /addon-pull-changes and decodes one incremental feed page. A structurally
// incomplete page (undecodable body) is reported as [ErrMalformedResponse],
// never partially applied.
func (h *httpServerAdapter) PullChanges(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	var out models.PullResponse
	if err := h.post(ctx, "/addon-pull-changes", req, &out); err != nil {
		return models.PullResponse{}, fmt.Errorf("pull changes: %w", err)
	}
	for _, c := range out.Changes {
		if !c.Valid() {
			return models.PullResponse{}, fmt.Errorf("%w: change %q missing required fields", ErrMalformedResponse, c.ChangeID)
		}
	}
	return out, nil
}

// PullCards implements [ServerAdapter]. It POSTs an offset/limit cursor with
// full_sync=true to /addon-pull-changes and decodes one page of cards.
func (h *httpServerAdapter) PullCards(ctx context.Context, req models.PullRequest) (models.FullPullResponse, error) {
	req.FullSync = true

	var out models.FullPullResponse
	if err := h.post(ctx, "/addon-pull-changes", req, &out); err != nil {
		return models.FullPullResponse{}, fmt.Errorf("pull cards: %w", err)
	}
	for _, card := range out.Cards {
		if card.CardGUID == "" {
			return models.FullPullResponse{}, fmt.Errorf("%w: card without guid in full-sync page", ErrMalformedResponse)
		}
	}
	return out, nil
}

// PushChanges implements [ServerAdapter]. It POSTs the batch to
// /addon-push-changes and returns the per-item outcomes.
func (h *httpServerAdapter) PushChanges(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	var out models.PushResponse
	if err := h.post(ctx, "/addon-push-changes", req, &out); err != nil {
		return models.PushResponse{}, fmt.Errorf("push changes: %w", err)
	}
	return out, nil
}

// SyncTags implements [ServerAdapter].
func (h *httpServerAdapter) SyncTags(ctx context.Context, req models.TagSyncRequest) (models.TagSyncResponse, error) {
	var out models.TagSyncResponse
	if err := h.post(ctx, "/addon-sync-tags", req, &out); err != nil {
		return models.TagSyncResponse{}, fmt.Errorf("sync tags: %w", err)
	}
	return out, nil
}

// SyncSuspendState implements [ServerAdapter].
func (h *httpServerAdapter) SyncSuspendState(ctx context.Context, req models.SuspendSyncRequest) (models.SuspendSyncResponse, error) {
	var out models.SuspendSyncResponse
	if err := h.post(ctx, "/addon-sync-suspend-state", req, &out); err != nil {
		return models.SuspendSyncResponse{}, fmt.Errorf("sync suspend state: %w", err)
	}
	return out, nil
}

// SyncMedia implements [ServerAdapter].
func (h *httpServerAdapter) SyncMedia(ctx context.Context, req models.MediaSyncRequest) (models.MediaSyncResponse, error) {
	var out models.MediaSyncResponse
	if err := h.post(ctx, "/addon-sync-media", req, &out); err != nil {
		return models.MediaSyncResponse{}, fmt.Errorf("sync media: %w", err)
	}
	return out, nil
}

// SyncNoteTypes implements [ServerAdapter].
func (h *httpServerAdapter) SyncNoteTypes(ctx context.Context, req models.NoteTypeSyncRequest) (models.NoteTypeSyncResponse, error) {
	var out models.NoteTypeSyncResponse
	if err := h.post(ctx, "/addon-sync-note-types", req, &out); err != nil {
		return models.NoteTypeSyncResponse{}, fmt.Errorf("sync note types: %w", err)
	}
	return out, nil
}

// DownloadFile implements [ServerAdapter]. Signed media URLs carry their own
// authentication, so no bearer token is attached.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := resty.NewWithClient(h.client.GetClient()).R().
		SetContext(ctx).
		Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("%w: downloaded file is empty", ErrMalformedResponse)
	}
	return resp.Body(), nil
}

// UploadFile implements [ServerAdapter]. Like DownloadFile it talks to a
// signed URL, so no bearer token is attached.
func (h *httpServerAdapter) UploadFile(ctx context.Context, fileURL string, content []byte) error {
	resp, err := resty.NewWithClient(h.client.GetClient()).R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(content).
		Put(fileURL)
	if err != nil {
		return fmt.Errorf("upload file: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	return nil
}

// post performs one authenticated POST, spending at most one token
// refresh-and-retry on a 401. The decoded body must carry success=true; a
// body that cannot be decoded at all is a malformed response.
func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	err := h.postOnce(ctx, path, body, result)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if _, refreshErr := h.creds.Refresh(ctx); refreshErr != nil {
		return fmt.Errorf("%w: %w", ErrReauthRequired, refreshErr)
	}

	if err = h.postOnce(ctx, path, body, result); errors.Is(err, ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrReauthRequired, err)
	}
	return err
}

func (h *httpServerAdapter) postOnce(ctx context.Context, path string, body, result any) error {
	token, err := h.creds.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("access token: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: decode %s body: %w", ErrMalformedResponse, path, err)
	}
	return checkEnvelope(resp.Body())
}

// checkEnvelope rejects a 2xx body that still reports success=false. The
// server uses the uniform {"success":false,"message":...} envelope for
// application-level failures.
func checkEnvelope(body []byte) error {
	var envelope models.APIError
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = "server reported failure without message"
		}
		return fmt.Errorf("%w: %s", ErrMalformedResponse, msg)
	}
	return nil
}
