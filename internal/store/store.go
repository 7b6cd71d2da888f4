// Package store keeps generated plans in memory, keyed by session so
// concurrent callers do not clobber each other's most-recent plan.
package store

import (
	"encoding/json"
	"sync"

	"github.com/jonathan/career-navigator/internal/types"
)

// DefaultSession is the session used when a caller supplies no session ID,
// preserving the original single-user flow.
const DefaultSession = "default"

// PlanStore holds the most recent plan per session. Last writer wins within
// a session; sessions never see each other's plans.
type PlanStore struct {
	mu    sync.RWMutex
	plans map[string]*types.PlanDocument
}

// NewPlanStore creates an empty store.
func NewPlanStore() *PlanStore {
	return &PlanStore{plans: make(map[string]*types.PlanDocument)}
}

// Put stores doc as the most recent plan for the session, replacing any
// prior plan. An empty session ID maps to DefaultSession.
func (s *PlanStore) Put(sessionID string, doc *types.PlanDocument) {
	if sessionID == "" {
		sessionID = DefaultSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[sessionID] = copyDoc(doc)
}

// Get returns a copy of the most recent plan for the session, or false if
// none has been generated.
func (s *PlanStore) Get(sessionID string) (*types.PlanDocument, bool) {
	if sessionID == "" {
		sessionID = DefaultSession
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.plans[sessionID]
	if !ok {
		return nil, false
	}
	return copyDoc(doc), true
}

// copyDoc isolates stored plans from later caller mutation.
func copyDoc(doc *types.PlanDocument) *types.PlanDocument {
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		clone := *doc
		return &clone
	}
	var out types.PlanDocument
	if err := json.Unmarshal(b, &out); err != nil {
		clone := *doc
		return &clone
	}
	return &out
}
