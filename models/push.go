// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package models

import "time"

// EditKind distinguishes an ordinary local edit from a suggestion submitted
// for the deck maintainer's review and from an explicit publish of a
// protected field. Only EditKindPublish may bypass the protected-field guard.
type EditKind string

const (
	EditKindEdit       EditKind = "edit"
	EditKindSuggestion EditKind = "suggestion"
	EditKindPublish    EditKind = "publish"
)

// EditStatus is the queue lifecycle of a local edit.
type EditStatus string

const (
	EditPending  EditStatus = "pending"
	EditAccepted EditStatus = "accepted"
	EditRejected EditStatus = "rejected"
)

// LocalEdit is one user-made change queued for submission to the server.
// ID is client-assigned (UUID). Rejected edits stay in the queue with their
// rejection reason until the caller inspects or resubmits them.
type LocalEdit struct {
	ID        string     `json:"id"`
	DeckID    string     `json:"deck_id"`
	CardGUID  string     `json:"card_guid"`
	FieldName string     `json:"field_name"`
	OldValue  string     `json:"old_value"`
	NewValue  string     `json:"new_value"`
	Kind      EditKind   `json:"kind"`
	Reason    string     `json:"reason,omitempty"`
	Status    EditStatus `json:"status"`
	Rejection string     `json:"rejection,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PushBatch is one bounded request's worth of pending edits for a deck. It is
// consumed by the transport and destroyed once every item has a terminal
// per-item outcome.
type PushBatch struct {
	BatchID     string      `json:"batch_id"`
	DeckID      string      `json:"deck_id"`
	Edits       []LocalEdit `json:"edits"`
	VersionHint string      `json:"version_hint,omitempty"`
}

// PushOutcome is the server's verdict on one pushed edit.
type PushOutcome struct {
	EditID   string `json:"edit_id,omitempty"`
	CardGUID string `json:"card_guid"`
	Field    string `json:"field_name"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// TagChange is one tag mutation exchanged by the tag-sync call. The old/new
// comparison semantics match field sync: Added lists tags the side gained,
// Removed lists tags it lost.
type TagChange struct {
	CardGUID string   `json:"card_guid"`
	Added    []string `json:"added,omitempty"`
	Removed  []string `json:"removed,omitempty"`
}

// SuspendChange is one suspend/bury state mutation.
type SuspendChange struct {
	CardGUID    string `json:"card_guid"`
	IsSuspended bool   `json:"is_suspended"`
	IsBuried    bool   `json:"is_buried"`
}
