// Package store ships a slice-backed, insertion-ordered implementation of
// rowsync.EntityStore for hosts that have no entity world of their own,
// and for tests.
//
// The store is deliberately unsynchronized: the reconciler mutates entities
// only from the tick goroutine, so a lock here would guard nothing. A host
// reading entities from other goroutines must provide its own coordination.
package store

import (
	"github.com/rowsync/rowsync"
)

type slot[K comparable, R rowsync.Record[K]] struct {
	id     rowsync.EntityID
	record R
}

// Store holds materialized entities in spawn order. Handles are never
// reused, including across Replace calls.
type Store[K comparable, R rowsync.Record[K]] struct {
	next  rowsync.EntityID
	slots []slot[K, R]
	index map[rowsync.EntityID]int
}

func New[K comparable, R rowsync.Record[K]]() *Store[K, R] {
	return &Store[K, R]{index: make(map[rowsync.EntityID]int)}
}

// Each iterates entities in spawn order until fn returns false.
func (s *Store[K, R]) Each(fn func(rowsync.EntityID, R) bool) {
	for _, sl := range s.slots {
		if !fn(sl.id, sl.record) {
			return
		}
	}
}

// Spawn materializes a new entity holding r.
func (s *Store[K, R]) Spawn(r R) rowsync.EntityID {
	s.next++
	id := s.next
	s.index[id] = len(s.slots)
	s.slots = append(s.slots, slot[K, R]{id: id, record: r})
	return id
}

// Replace swaps the record held by id. Unknown handles are ignored.
func (s *Store[K, R]) Replace(id rowsync.EntityID, r R) {
	if i, ok := s.index[id]; ok {
		s.slots[i].record = r
	}
}

// Get returns the record held by id.
func (s *Store[K, R]) Get(id rowsync.EntityID) (R, bool) {
	if i, ok := s.index[id]; ok {
		return s.slots[i].record, true
	}
	var zero R
	return zero, false
}

// Len returns the number of materialized entities.
func (s *Store[K, R]) Len() int {
	return len(s.slots)
}

// All returns the records in spawn order.
func (s *Store[K, R]) All() []R {
	out := make([]R, 0, len(s.slots))
	for _, sl := range s.slots {
		out = append(out, sl.record)
	}
	return out
}
