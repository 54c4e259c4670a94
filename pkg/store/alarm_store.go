// Package store holds the in-memory alarm collection and the per-day
// dismissal set. Alarms live only for the process lifetime.
package store

import (
	"errors"
	"sync"

	"github.com/borgmon/riseandpi/pkg/models"
)

// ErrNotFound is returned when an operation targets an alarm id that is no
// longer in the store.
var ErrNotFound = errors.New("alarm not found")

// AlarmStore is the ordered collection of alarm records. It is safe for
// concurrent use; invariants that span multiple records (such as the single
// snooze instance per base alarm) are enforced by the engine at the call
// site, not here.
type AlarmStore struct {
	mu sync.RWMutex

	// Records in insertion order; the trigger scan depends on this order
	// being deterministic.
	ordered []models.AlarmRecord

	// Map of alarm ID to index in ordered, for quick lookup
	index map[string]int
}

// NewAlarmStore creates an empty AlarmStore.
func NewAlarmStore() *AlarmStore {
	return &AlarmStore{
		index: make(map[string]int),
	}
}

// Add appends a record and returns its id.
func (s *AlarmStore) Add(record models.AlarmRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[record.ID] = len(s.ordered)
	s.ordered = append(s.ordered, record)
	return record.ID
}

// Update replaces the record with the given id in place, preserving its
// position in the scan order.
func (s *AlarmStore) Update(id string, record models.AlarmRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	record.ID = id
	s.ordered[i] = record
	return nil
}

// Remove deletes the record with the given id.
func (s *AlarmStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.removeAt(i)
	return nil
}

// RemoveMatching deletes every record the predicate accepts and returns how
// many were removed.
func (s *AlarmStore) RemoveMatching(match func(models.AlarmRecord) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for i := 0; i < len(s.ordered); {
		if match(s.ordered[i]) {
			s.removeAt(i)
			removed++
		} else {
			i++
		}
	}
	return removed
}

// removeAt must be called with the write lock held.
func (s *AlarmStore) removeAt(i int) {
	delete(s.index, s.ordered[i].ID)
	s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
	for j := i; j < len(s.ordered); j++ {
		s.index[s.ordered[j].ID] = j
	}
}

// Find returns the record with the given id.
func (s *AlarmStore) Find(id string) (models.AlarmRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.AlarmRecord{}, false
	}
	return s.ordered[i], true
}

// All returns a snapshot of every record in insertion order. The snapshot is
// a copy; mutating it has no effect on the store.
func (s *AlarmStore) All() []models.AlarmRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.AlarmRecord, len(s.ordered))
	copy(snapshot, s.ordered)
	return snapshot
}

// Len returns the number of records.
func (s *AlarmStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}
