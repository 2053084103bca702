// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package service

import "github.com/cardstream/decksync/models"

// ProtectedFieldGuard is the pure filter consulted symmetrically by the
// conflict resolver (inbound) and the push queue (outbound). A field is
// protected when either the server flagged the change as protected or the
// user listed the field in the deck's ProtectedFieldSet; either assertion is
// sufficient, and protection always takes precedence over conflict
// detection.
type ProtectedFieldGuard struct{}

// NewProtectedFieldGuard constructs a guard. The guard is stateless; the
// protected set is passed per call because it can change between cycles.
func NewProtectedFieldGuard() *ProtectedFieldGuard {
	return &ProtectedFieldGuard{}
}

// BlocksInbound reports whether change must not be applied locally.
func (g *ProtectedFieldGuard) BlocksInbound(change models.Change, protected models.ProtectedFieldSet) bool {
	if change.IsProtected {
		return true
	}
	return protected.Contains(change.FieldName)
}

// BlocksOutbound reports whether edit must not leave the client as part of
// ordinary sync. An explicit publish bypasses the guard; that is the one
// deliberate path for a protected field to reach the server.
func (g *ProtectedFieldGuard) BlocksOutbound(edit models.LocalEdit, protected models.ProtectedFieldSet) bool {
	if edit.Kind == models.EditKindPublish {
		return false
	}
	return protected.Contains(edit.FieldName)
}

// FilterOutbound splits edits into those allowed to be pushed and those the
// guard blocks.
func (g *ProtectedFieldGuard) FilterOutbound(edits []models.LocalEdit, protected models.ProtectedFieldSet) (allowed, blocked []models.LocalEdit) {
	for _, e := range edits {
		if g.BlocksOutbound(e, protected) {
			blocked = append(blocked, e)
			continue
		}
		allowed = append(allowed, e)
	}
	return allowed, blocked
}
