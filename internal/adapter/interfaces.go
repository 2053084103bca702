// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

// Package adapter provides the transport layer for talking to the deck
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the wire protocol (HTTPS/JSON, bearer-token authenticated). Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAccessDenied] for 403, [ErrRateLimited] for 429).
//
// Credentials are injected through [CredentialsProvider] — a capability
// passed at construction, never process-global state.
package adapter

import (
	"context"

	"github.com/cardstream/decksync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the deck
// server. Implementations are responsible for serialisation, authentication
// header management, the single 401 refresh-and-retry, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// PullChanges requests one page of the incremental change feed for
	// req.DeckID, starting after req.LastChangeID (or from the start of the
	// feed when it is empty). The returned page carries the new watermark and
	// a has_more flag; callers loop until has_more is false.
	PullChanges(ctx context.Context, req models.PullRequest) (models.PullResponse, error)

	// PullCards requests one offset/limit page of a full deck transfer.
	// The server may cap the requested limit.
	PullCards(ctx context.Context, req models.PullRequest) (models.FullPullResponse, error)

	// PushChanges submits a bounded batch of local edits. The response
	// carries per-item outcomes where the server supports them.
	PushChanges(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// SyncTags exchanges tag changes for a deck in the given direction.
	SyncTags(ctx context.Context, req models.TagSyncRequest) (models.TagSyncResponse, error)

	// SyncSuspendState exchanges suspend/bury states for a deck.
	SyncSuspendState(ctx context.Context, req models.SuspendSyncRequest) (models.SuspendSyncResponse, error)

	// SyncMedia drives one step of the content-addressed media exchange
	// (list, download, upload, get_upload_url, confirm_upload).
	SyncMedia(ctx context.Context, req models.MediaSyncRequest) (models.MediaSyncResponse, error)

	// SyncNoteTypes gets or pushes note-type definitions for a deck.
	SyncNoteTypes(ctx context.Context, req models.NoteTypeSyncRequest) (models.NoteTypeSyncResponse, error)

	// DownloadFile fetches raw bytes from a signed URL returned by a media
	// list/download step. The URL is already authenticated; no bearer token
	// is attached.
	DownloadFile(ctx context.Context, url string) ([]byte, error)

	// UploadFile PUTs raw bytes to a signed upload URL obtained via
	// SyncMedia with get_upload_url. No bearer token is attached.
	UploadFile(ctx context.Context, url string, content []byte) error
}

// CredentialsProvider supplies bearer tokens to the transport. Token
// provisioning (login) is an external collaborator; the provider only hands
// out and refreshes material it was given.
type CredentialsProvider interface {
	// AccessToken returns a token believed to be valid, refreshing first when
	// the held token is known to be expired.
	AccessToken(ctx context.Context) (string, error)

	// Refresh forces a token refresh and returns the new access token.
	// Returns [ErrReauthRequired] (wrapped) when no refresh is possible.
	Refresh(ctx context.Context) (string, error)
}
