package models

import (
	"strconv"
	"strings"
	"time"
)

// Deck is the client-side projection of a server-owned deck. The server is
// authoritative for every field here; the client only caches it alongside the
// local card set.
type Deck struct {
	ID          string     `json:"deck_id"`
	Title       string     `json:"title"`
	Version     string     `json:"version"`
	CardCount   int        `json:"card_count"`
	AccessTier  AccessTier `json:"access_tier,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
	Description string     `json:"description,omitempty"`
}

// AccessTier describes what the authenticated user is entitled to for a deck.
type AccessTier string

const (
	TierLifetime AccessTier = "lifetime_subscriber"
	TierSub      AccessTier = "subscriber"
	TierFree     AccessTier = "free_tier"
	TierNone     AccessTier = "none"
)

// CanSyncUpdates reports whether the tier is allowed to pull incremental
// updates. Free-tier users only get the initial download of free decks.
func (t AccessTier) CanSyncUpdates() bool {
	return t == TierLifetime || t == TierSub
}

// CompareVersions orders two semver-like deck version strings. Missing
// segments count as zero, non-numeric segments fall back to string order.
// Returns -1, 0 or +1.
func CompareVersions(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var sa, sb string
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}
		if sa == "" {
			sa = "0"
		}
		if sb == "" {
			sb = "0"
		}
		na, errA := strconv.Atoi(sa)
		nb, errB := strconv.Atoi(sb)
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		default:
			if sa != sb {
				if sa < sb {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}
