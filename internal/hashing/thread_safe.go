package hashing

import (
	"sync"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// ThreadSafePositionSet wraps PositionSet with mutex protection for concurrent access.
type ThreadSafePositionSet struct {
	set *PositionSet
	mu  sync.RWMutex
}

// NewThreadSafePositionSet creates a new thread-safe set.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionSet(maxCapacity int) *ThreadSafePositionSet {
	return &ThreadSafePositionSet{
		set: NewPositionSet(maxCapacity),
	}
}

// Add atomically checks for b and records it.
func (s *ThreadSafePositionSet) Add(b chess.Board) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Add(b)
}

// Contains reports whether b has been added.
func (s *ThreadSafePositionSet) Contains(b chess.Board) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(b)
}

// DuplicateCount returns the number of duplicates seen.
func (s *ThreadSafePositionSet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// UniqueCount returns the number of distinct boards stored.
func (s *ThreadSafePositionSet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}

// LoadFromSet copies entries from an existing set. Call before concurrent use.
func (s *ThreadSafePositionSet) LoadFromSet(other *PositionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range other.Boards() {
		s.set.Add(b)
	}
}

// IsFull returns true if the set has reached its capacity limit.
func (s *ThreadSafePositionSet) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.IsFull()
}
