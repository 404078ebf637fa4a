// internal/state/journal.go
package state

import (
	"sync"
	"time"

	"github.com/user/brandforge/internal/types"
)

// DefaultJournalCapacity bounds the journal when no capacity is configured.
const DefaultJournalCapacity = 256

// Transition is one recorded phase change of a generation attempt.
type Transition struct {
	AttemptID types.AttemptID `json:"attempt_id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Reason    string          `json:"reason,omitempty"`
	At        time.Time       `json:"at"`
}

// Journal is a bounded, append-only log of attempt transitions. Callers never
// need it to behave correctly; it exists so Failed and Abandoned attempts stay
// distinguishable after the fact.
type Journal struct {
	mu      sync.Mutex
	cap     int
	records []Transition
}

// NewJournal creates a journal keeping at most capacity transitions. A
// non-positive capacity falls back to DefaultJournalCapacity.
func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{cap: capacity}
}

// Append records a transition, evicting the oldest entries beyond capacity.
func (j *Journal) Append(rec Transition) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if rec.At.IsZero() {
		rec.At = time.Now()
	}
	j.records = append(j.records, rec)
	if overflow := len(j.records) - j.cap; overflow > 0 {
		j.records = append(j.records[:0:0], j.records[overflow:]...)
	}
}

// Tail returns the most recent transitions, oldest first, at most limit. A
// non-positive limit returns everything retained.
func (j *Journal) Tail(limit int) []Transition {
	j.mu.Lock()
	defer j.mu.Unlock()

	n := len(j.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Transition, n)
	copy(out, j.records[len(j.records)-n:])
	return out
}
