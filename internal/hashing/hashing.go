// Package hashing provides position deduplication for move-tree exploration.
package hashing

import "github.com/lgbarn/pawnrace-go/internal/chess"

// PositionSet tracks seen positions keyed by Zobrist hash.
type PositionSet struct {
	// hashTable stores every distinct board seen under its hash
	hashTable map[uint64][]chess.Board
	// maxCapacity limits the number of stored boards (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks how many Add calls saw a known board
	duplicateCount int
	uniqueCount    int
}

// NewPositionSet creates an empty set. maxCapacity of 0 means unlimited.
func NewPositionSet(maxCapacity int) *PositionSet {
	return &PositionSet{
		hashTable:   make(map[uint64][]chess.Board),
		maxCapacity: maxCapacity,
	}
}

// Add records b and reports whether it was new. Once the set is full, new
// boards are not stored and Add returns false for them.
func (s *PositionSet) Add(b chess.Board) bool {
	hash := Hash(b)
	if s.containsHashed(hash, b) {
		s.duplicateCount++
		return false
	}
	if s.IsFull() {
		return false
	}
	s.hashTable[hash] = append(s.hashTable[hash], b)
	s.uniqueCount++
	return true
}

// Contains reports whether b has been added.
func (s *PositionSet) Contains(b chess.Board) bool {
	return s.containsHashed(Hash(b), b)
}

func (s *PositionSet) containsHashed(hash uint64, b chess.Board) bool {
	// A hash collision keeps both boards; equality settles membership.
	for _, seen := range s.hashTable[hash] {
		if seen == b {
			return true
		}
	}
	return false
}

// DuplicateCount returns the number of duplicates seen.
func (s *PositionSet) DuplicateCount() int {
	return s.duplicateCount
}

// UniqueCount returns the number of distinct boards stored.
func (s *PositionSet) UniqueCount() int {
	return s.uniqueCount
}

// IsFull returns true if the set has reached its capacity limit.
func (s *PositionSet) IsFull() bool {
	return s.maxCapacity > 0 && s.uniqueCount >= s.maxCapacity
}

// Boards returns the stored boards in no particular order.
func (s *PositionSet) Boards() []chess.Board {
	out := make([]chess.Board, 0, s.uniqueCount)
	for _, boards := range s.hashTable {
		out = append(out, boards...)
	}
	return out
}

// Reset clears the set.
func (s *PositionSet) Reset() {
	s.hashTable = make(map[uint64][]chess.Board)
	s.duplicateCount = 0
	s.uniqueCount = 0
}
