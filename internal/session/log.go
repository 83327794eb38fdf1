// Package session holds the in-memory activity log for one run of triage.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Entry is one human-readable description of a completed action.
type Entry string

// Log is an ordered, append-only record of session activity. Entries are
// only removed by Clear. It is safe for concurrent use.
type Log struct {
	id      string
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty Log with a fresh session ID.
func New() *Log {
	return &Log{id: uuid.NewString()}
}

// ID identifies the session that owns the log.
func (l *Log) ID() string {
	return l.id
}

// Append adds an entry at the end of the log.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
