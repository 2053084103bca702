// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package models

import (
	"strconv"
	"time"
)

// Checkpoint is the durable marker of sync progress for one deck. It is
// created on the first successful pull and advanced only after a page of
// changes has been fully committed to the local store, so a crashed or
// cancelled cycle resumes from the last applied page instead of restarting.
type Checkpoint struct {
	DeckID       string     `json:"deck_id"`
	LastChangeID string     `json:"last_change_id"`
	DeckVersion  string     `json:"deck_version"`
	AccessTier   AccessTier `json:"access_tier,omitempty"`
	LastSyncedAt time.Time  `json:"last_synced_at"`
}

// IsAheadOf reports whether c is strictly ahead of prev in checkpoint order.
// The ordering key is LastChangeID — compared numerically when both sides
// parse as integers, lexicographically otherwise — with LastSyncedAt breaking
// ties so that an empty incremental pull can still record its sync time.
func (c Checkpoint) IsAheadOf(prev Checkpoint) bool {
	switch cmp := compareChangeIDs(c.LastChangeID, prev.LastChangeID); {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	default:
		return c.LastSyncedAt.After(prev.LastSyncedAt)
	}
}

func compareChangeIDs(a, b string) int {
	if a == b {
		return 0
	}
	// Server change IDs are usually numeric; numeric order makes "101" > "99".
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	// An absent ID always orders before a present one.
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}
	if a < b {
		return -1
	}
	return 1
}
