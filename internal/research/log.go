// Package research provides an append-only event log for model research mode.
// The log is injected into the systems that record to it; it is owned by the
// service, not by the dispatch core.
package research

import (
	"sync"
	"time"
)

// Event is a single recorded research observation.
type Event struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

// Log is a concurrency-safe append-only event buffer with a toggle. Recording
// while disabled is a no-op.
type Log struct {
	mu      sync.RWMutex
	enabled bool
	events  []Event
}

// NewLog creates a research log. Recording starts enabled, matching the
// default research mode of the service.
func NewLog() *Log {
	return &Log{enabled: true}
}

// SetEnabled toggles event recording.
func (l *Log) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Enabled reports whether events are currently recorded.
func (l *Log) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

// Record appends an event when the log is enabled.
func (l *Log) Record(eventType string, data map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	l.events = append(l.events, Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Events returns a snapshot copy of all recorded events.
func (l *Log) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	events := make([]Event, len(l.events))
	copy(events, l.events)
	return events
}
