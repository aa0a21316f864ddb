// Package hashing counts repeated positions within a game.
package hashing

import (
	"github.com/bhataktaBhai/ShallowRed/internal/engine"
)

// RepetitionTable records the positions reached in a game and how often
// each occurred. Positions are bucketed by Key and told apart with Equal,
// so a hash collision never merges two different positions.
type RepetitionTable struct {
	buckets  map[uint64][]*occurrence
	distinct int
	maxCount int
}

type occurrence struct {
	pos   *engine.Position
	count int
}

// NewRepetitionTable returns an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{buckets: make(map[uint64][]*occurrence)}
}

// Add records pos and returns how many times it has now occurred.
func (t *RepetitionTable) Add(pos *engine.Position) int {
	key := pos.Key()
	for _, o := range t.buckets[key] {
		if o.pos.Equal(pos) {
			o.count++
			if o.count > t.maxCount {
				t.maxCount = o.count
			}
			return o.count
		}
	}
	t.buckets[key] = append(t.buckets[key], &occurrence{pos: pos, count: 1})
	t.distinct++
	if t.maxCount < 1 {
		t.maxCount = 1
	}
	return 1
}

// Count returns how many times pos has occurred.
func (t *RepetitionTable) Count(pos *engine.Position) int {
	for _, o := range t.buckets[pos.Key()] {
		if o.pos.Equal(pos) {
			return o.count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// Len returns the number of distinct positions recorded.
func (t *RepetitionTable) Len() int {
	return t.distinct
}

// Reset forgets every position. Called after an irreversible move, since
// no earlier position can recur.
func (t *RepetitionTable) Reset() {
	t.buckets = make(map[uint64][]*occurrence)
	t.distinct = 0
	t.maxCount = 0
}
