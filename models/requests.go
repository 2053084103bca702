// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package models

// PullRequest asks the change feed for deltas. An absent LastChangeID means
// "from the start of the feed". For a full sync the client sets FullSync with
// an offset/limit cursor instead.
type PullRequest struct {
	DeckID       string `json:"deck_id"`
	LastChangeID string `json:"last_change_id,omitempty"`
	FullSync     bool   `json:"full_sync,omitempty"`
	Offset       int    `json:"offset,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// PullResponse is the incremental change feed page. Conflicts may arrive
// server-precomputed; the client treats them as an optional cache and always
// derives its own.
type PullResponse struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message,omitempty"`
	Changes         []Change   `json:"changes"`
	Conflicts       []Conflict `json:"conflicts,omitempty"`
	ProtectedFields []string   `json:"protected_fields,omitempty"`
	LatestChangeID  string     `json:"latest_change_id"`
	HasMore         bool       `json:"has_more"`
}

// FullPullResponse is one page of a paginated complete deck transfer. Deck,
// when present, carries the deck's metadata and the caller's access tier for
// it; the tier is recorded on the snapshot checkpoint.
type FullPullResponse struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message,omitempty"`
	Deck           *Deck      `json:"deck,omitempty"`
	Cards          []Card     `json:"cards"`
	NoteTypes      []NoteType `json:"note_types,omitempty"`
	TotalCards     int        `json:"total_cards"`
	HasMore        bool       `json:"has_more"`
	NextOffset     int        `json:"next_offset"`
	LatestChangeID string     `json:"latest_change_id"`
	DeckVersion    string     `json:"deck_version,omitempty"`
}

// PushRequest submits a batch of local edits. BatchID is stable across
// retries of the same batch so the server can de-duplicate a push whose
// response was lost.
type PushRequest struct {
	DeckID  string      `json:"deck_id"`
	BatchID string      `json:"batch_id,omitempty"`
	Changes []LocalEdit `json:"changes"`
	Version string      `json:"version,omitempty"`
}

// PushResponse reports per-item outcomes for a push. Servers that do not
// support per-item results return only ChangesSaved, in which case every item
// in the batch shares the aggregate outcome.
type PushResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	ChangesSaved int           `json:"changes_saved"`
	Outcomes     []PushOutcome `json:"outcomes,omitempty"`
	LastChangeID string        `json:"last_change_id,omitempty"`
}

// SyncAction selects the direction of a tag/suspend/note-type sync call.
type SyncAction string

const (
	ActionPull SyncAction = "pull"
	ActionPush SyncAction = "push"
	ActionGet  SyncAction = "get"
)

// TagSyncRequest exchanges tag changes for a deck.
type TagSyncRequest struct {
	DeckID  string      `json:"deck_id"`
	Action  SyncAction  `json:"action"`
	Changes []TagChange `json:"changes,omitempty"`
	Since   string      `json:"since,omitempty"`
}

// TagSyncResponse reports the server-side tag deltas.
type TagSyncResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	TagsAdded   int         `json:"tags_added"`
	TagsRemoved int         `json:"tags_removed"`
	Changes     []TagChange `json:"changes,omitempty"`
}

// SuspendSyncRequest exchanges suspend/bury states for a deck.
type SuspendSyncRequest struct {
	DeckID  string          `json:"deck_id"`
	Action  SyncAction      `json:"action"`
	Changes []SuspendChange `json:"changes,omitempty"`
}

// SuspendSyncResponse reports how many cards were updated server-side, plus
// the server's states on a pull.
type SuspendSyncResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	CardsUpdated int             `json:"cards_updated"`
	Changes      []SuspendChange `json:"changes,omitempty"`
}

// MediaAction selects the media-sync operation.
type MediaAction string

const (
	MediaList          MediaAction = "list"
	MediaDownload      MediaAction = "download"
	MediaUpload        MediaAction = "upload"
	MediaGetUploadURL  MediaAction = "get_upload_url"
	MediaConfirmUpload MediaAction = "confirm_upload"
)

// MediaSyncRequest drives the content-addressed media exchange.
type MediaSyncRequest struct {
	DeckID   string      `json:"deck_id"`
	Action   MediaAction `json:"action"`
	FileName string      `json:"file_name,omitempty"`
	FileHash string      `json:"file_hash,omitempty"`
}

// MediaSyncResponse lists media entries or reports transfer counts.
type MediaSyncResponse struct {
	Success         bool        `json:"success"`
	Message         string      `json:"message,omitempty"`
	Files           []MediaFile `json:"files,omitempty"`
	FilesDownloaded int         `json:"files_downloaded,omitempty"`
	FilesUploaded   int         `json:"files_uploaded,omitempty"`
	UploadURL       string      `json:"upload_url,omitempty"`
}

// NoteTypeSyncRequest gets or pushes note-type definitions.
type NoteTypeSyncRequest struct {
	DeckID    string     `json:"deck_id"`
	Action    SyncAction `json:"action"`
	NoteTypes []NoteType `json:"note_types,omitempty"`
}

// NoteTypeSyncResponse carries note-type definitions back.
type NoteTypeSyncResponse struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message,omitempty"`
	NoteTypes    []NoteType `json:"note_types,omitempty"`
	TypesUpdated int        `json:"types_updated,omitempty"`
}
