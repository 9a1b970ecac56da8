// Package feed holds the accumulated, newest-first list of items the
// discover view scrolls through.
package feed

import (
	"fmt"
	"sync"
	"time"

	"github.com/astroshell/cosmonaut/internal/apod"
)

// Snapshot is the feed state visible to the UI at one instant.
type Snapshot struct {
	Items               []apod.Item
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the API has failed often enough in a row
// that the UI should say so instead of spinning forever.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent access to the feed. The pager appends
// fetched windows; the UI reads snapshots at its own cadence.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Append adds a fetched window to the tail of the feed. Windows arrive
// newest-first and strictly older than everything already present, so a
// plain append keeps the whole feed newest-first.
func (s *Store) Append(items []apod.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Items = append(s.snapshot.Items, items...)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Fail records a fetch failure. Existing items are kept; only the error
// state changes.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns an independent copy of the current feed state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Len reports the number of items currently in the feed.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Items)
}

func cloneItems(items []apod.Item) []apod.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]apod.Item, len(items))
	copy(dup, items)
	return dup
}
