// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import (
	"time"

	"github.com/cardstream/decksync/models"
)

// ResolutionKind classifies what the resolver decided for one change.
type ResolutionKind int

const (
	// ResolutionApply means the change applies cleanly: the local value
	// matched the server's old_value baseline (or the field did not exist).
	ResolutionApply ResolutionKind = iota

	// ResolutionConflict means the local value diverged from the baseline on
	// an unprotected field. Server wins, but the divergence is recorded for
	// user review — never applied silently without record.
	ResolutionConflict

	// ResolutionSkipProtected means the field is protected (server-flagged or
	// locally configured): the change is neither applied nor recorded as a
	// conflict; the local value stays authoritative until the user publishes.
	ResolutionSkipProtected
)

// Resolution is the resolver's verdict for one incoming change.
type Resolution struct {
	Kind     ResolutionKind
	Change   models.Change
	Conflict models.Conflict
}

// ConflictResolver classifies incoming changes against local card state.
// It is a pure component: no storage, no transport.
type ConflictResolver struct {
	guard *ProtectedFieldGuard
}

func NewConflictResolver(guard *ProtectedFieldGuard) *ConflictResolver {
	return &ConflictResolver{guard: guard}
}

// Resolve classifies change against card (nil when the card does not exist
// locally). Protection is checked first: protected status, wherever asserted,
// takes precedence over conflict detection.
func (r *ConflictResolver) Resolve(deckID string, change models.Change, card *models.Card, protected models.ProtectedFieldSet) Resolution {
	if change.ChangeType != models.ChangeDelete && r.guard.BlocksInbound(change, protected) {
		return Resolution{Kind: ResolutionSkipProtected, Change: change}
	}

	// Deletes and additions of unseen cards have no local baseline to
	// diverge from.
	if card == nil || change.ChangeType == models.ChangeDelete {
		return Resolution{Kind: ResolutionApply, Change: change}
	}

	localValue, exists := card.Field(change.FieldName)
	if !exists || localValue == change.OldValue {
		return Resolution{Kind: ResolutionApply, Change: change}
	}

	return Resolution{
		Kind:   ResolutionConflict,
		Change: change,
		Conflict: models.Conflict{
			DeckID:      deckID,
			CardGUID:    change.CardGUID,
			FieldName:   change.FieldName,
			LocalValue:  localValue,
			ServerValue: change.NewValue,
			IsProtected: false,
			DetectedAt:  time.Now().UTC(),
		},
	}
}
