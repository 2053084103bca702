// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package models

import "time"

// ChangeType classifies a server-issued change.
type ChangeType string

const (
	ChangeAdd    ChangeType = "add"
	ChangeModify ChangeType = "modify"
	ChangeDelete ChangeType = "delete"
)

// Change is a single immutable server-issued mutation of one card field.
// ChangeID is server-assigned and unique; the client treats it as the
// deduplication key, so applying the same ChangeID twice is a no-op.
type Change struct {
	ChangeID    string     `json:"change_id"`
	CardGUID    string     `json:"card_guid"`
	FieldName   string     `json:"field_name"`
	OldValue    string     `json:"old_value"`
	NewValue    string     `json:"new_value"`
	ChangeType  ChangeType `json:"change_type"`
	IsProtected bool       `json:"is_protected"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// Valid reports whether the change carries the fields the client depends on.
// A structurally incomplete change makes the whole page a ValidationError,
// never a silently skipped item.
func (c Change) Valid() bool {
	if c.ChangeID == "" || c.CardGUID == "" {
		return false
	}
	switch c.ChangeType {
	case ChangeAdd, ChangeModify:
		return c.FieldName != ""
	case ChangeDelete:
		return true
	default:
		return false
	}
}

// Conflict records a divergence between the local value of an unprotected
// field and the baseline the server expected. It is derived on the client and
// retained for user review; the server value still wins.
type Conflict struct {
	DeckID      string    `json:"deck_id"`
	CardGUID    string    `json:"card_guid"`
	FieldName   string    `json:"field_name"`
	LocalValue  string    `json:"local_value"`
	ServerValue string    `json:"server_value"`
	IsProtected bool      `json:"is_protected"`
	DetectedAt  time.Time `json:"detected_at"`
}

// ProtectedFieldSet is the per-deck set of field names the user has marked as
// their own. It is local-only configuration: read by the sync core, mutated by
// the external settings surface.
type ProtectedFieldSet map[string]struct{}

// NewProtectedFieldSet builds a set from a list of field names.
func NewProtectedFieldSet(fields ...string) ProtectedFieldSet {
	s := make(ProtectedFieldSet, len(fields))
	for _, f := range fields {
		if f != "" {
			s[f] = struct{}{}
		}
	}
	return s
}

// Contains reports whether field is in the set.
func (s ProtectedFieldSet) Contains(field string) bool {
	_, ok := s[field]
	return ok
}

// Names returns the field names in the set, in no particular order.
func (s ProtectedFieldSet) Names() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	return out
}
