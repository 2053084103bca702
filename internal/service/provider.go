package service

import (
	"context"
	"sync"

	"github.com/cardstream/decksync/models"
)

// StaticProtectedFields is an in-memory ProtectedFieldProvider: a global set
// applying to every deck plus per-deck additions. The settings UI mutates it;
// the sync core reads it. Safe for concurrent use.
type StaticProtectedFields struct {
	mu      sync.RWMutex
	global  models.ProtectedFieldSet
	perDeck map[string]models.ProtectedFieldSet
}

func NewStaticProtectedFields(global []string) *StaticProtectedFields {
	p := &StaticProtectedFields{
		global:  make(models.ProtectedFieldSet, len(global)),
		perDeck: make(map[string]models.ProtectedFieldSet),
	}
	for _, f := range global {
		p.global[f] = struct{}{}
	}
	return p
}

func (p *StaticProtectedFields) ProtectedFields(_ context.Context, deckID string) (models.ProtectedFieldSet, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	merged := make(models.ProtectedFieldSet, len(p.global)+len(p.perDeck[deckID]))
	for f := range p.global {
		merged[f] = struct{}{}
	}
	for f := range p.perDeck[deckID] {
		merged[f] = struct{}{}
	}
	return merged, nil
}

// Protect marks field as protected for deckID, or globally when deckID is
// empty.
func (p *StaticProtectedFields) Protect(deckID, field string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if deckID == "" {
		p.global[field] = struct{}{}
		return
	}
	set, ok := p.perDeck[deckID]
	if !ok {
		set = make(models.ProtectedFieldSet)
		p.perDeck[deckID] = set
	}
	set[field] = struct{}{}
}

// Unprotect removes a per-deck or global protection. Removing a global
// protection does not touch per-deck entries.
func (p *StaticProtectedFields) Unprotect(deckID, field string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if deckID == "" {
		delete(p.global, field)
		return
	}
	delete(p.perDeck[deckID], field)
}
