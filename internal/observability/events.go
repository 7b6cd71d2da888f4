// Package observability provides structured decision events emitted by the
// normalization and orchestration pipeline.
package observability

import (
	"log"
	"sync"
)

// EventKind identifies a decision point in the pipeline.
type EventKind string

// Event kinds emitted by the pipeline.
const (
	// EventAliasResolved is emitted when an alias key is moved to its canonical key.
	EventAliasResolved EventKind = "alias_resolved"
	// EventAliasDropped is emitted when an alias is discarded because the canonical key already exists.
	EventAliasDropped EventKind = "alias_dropped"
	// EventSlotSynthesized is emitted when a missing structural slot is filled with placeholder content.
	EventSlotSynthesized EventKind = "slot_synthesized"
	// EventMergeAccepted is emitted when a second-call project candidate replaces the existing project.
	EventMergeAccepted EventKind = "project_merge_accepted"
	// EventMergeRejected is emitted when a second-call result is discarded.
	EventMergeRejected EventKind = "project_merge_rejected"
	// EventFallbackTriggered is emitted when canned content substitutes for generated content.
	EventFallbackTriggered EventKind = "fallback_triggered"
	// EventValidationFailed is emitted when the assembled document fails the schema gate.
	EventValidationFailed EventKind = "validation_failed"
)

// Event records a single pipeline decision.
type Event struct {
	Kind   EventKind
	Scope  string // "document", "project", "roadmap", "call_1", "call_2", "adapt"
	Key    string // field or slot the decision applied to
	Detail string
}

// Recorder receives pipeline decision events.
type Recorder interface {
	Record(e Event)
}

// LogRecorder writes events to the standard logger.
type LogRecorder struct{}

// Record logs the event.
func (LogRecorder) Record(e Event) {
	if e.Detail != "" {
		log.Printf("[Career Brain] %s scope=%s key=%s: %s", e.Kind, e.Scope, e.Key, e.Detail)
		return
	}
	log.Printf("[Career Brain] %s scope=%s key=%s", e.Kind, e.Scope, e.Key)
}

// MemoryRecorder collects events for inspection. Safe for concurrent use.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []Event
}

// Record appends the event.
func (r *MemoryRecorder) Record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the collected events.
func (r *MemoryRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Filter returns the collected events of a given kind.
func (r *MemoryRecorder) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Nop discards all events.
type Nop struct{}

// Record discards the event.
func (Nop) Record(Event) {}
