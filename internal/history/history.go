// Package history keeps recommendation history for the HTTP front end. The
// advisor core never depends on it.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/briangreenhill/fitadvisor/advisor"
)

// Entry is one saved metrics/recommendation pair.
type Entry struct {
	ID             string                 `json:"id"`
	Timestamp      time.Time              `json:"timestamp"`
	UserID         string                 `json:"user_id"`
	Metrics        advisor.HealthMetrics  `json:"metrics"`
	Recommendation advisor.Recommendation `json:"recommendation"`
}

// Store is the storage abstraction the front end is wired against.
type Store interface {
	Append(e Entry) Entry
	Query(userID string) []Entry
	All() []Entry
	Len() int
}

// MemoryStore is an ephemeral in-process Store. Handlers share it, so access
// is mutex-guarded.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append stores an entry, assigning an ID and timestamp when missing, and
// returns the stored value.
func (s *MemoryStore) Append(e Entry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.UserID == "" {
		e.UserID = "anonymous"
	}
	s.entries = append(s.entries, e)
	return e
}

// Query returns all entries for a user in insertion order.
func (s *MemoryStore) Query(userID string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// All returns a copy of every entry in insertion order.
func (s *MemoryStore) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
