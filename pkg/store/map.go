// Package store provides a fixed-capacity open-addressing hash map. It is
// the backing storage for the widget registry and instance pool: the slot
// array is allocated once at construction and never grows, so steady-state
// operation performs no allocation.
package store

import (
	"errors"
	"iter"
)

// ErrFull is returned by Insert when the probe sequence is exhausted
// without finding a reusable slot.
var ErrFull = errors.New("store: map is full")

// Key constrains keys to small integer-representable identifiers so the
// hash can be a plain modulo over the slot array.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type slot[K Key, V any] struct {
	key      K
	value    V
	occupied bool // slot has held an entry at some point
	deleted  bool // tombstone: removed, but still part of the probe chain
}

// Map is a fixed-capacity hash map keyed by a small integer identifier,
// using linear probing and tombstone deletion. Removing an entry leaves a
// tombstone so that entries which probed past the removed slot remain
// reachable. Emptiness is tracked by per-slot flags, never by comparing
// keys against the zero value, so the key type's zero member is a
// legitimate key.
//
// Callers are responsible for keeping the load factor at or below roughly
// 0.7; beyond that, probe sequences degrade toward full table scans.
type Map[K Key, V any] struct {
	slots []slot[K, V]
}

// New returns a map with the given fixed capacity. It panics if capacity
// is not positive.
func New[K Key, V any](capacity int) *Map[K, V] {
	if capacity <= 0 {
		panic("store: capacity must be positive")
	}
	return &Map[K, V]{slots: make([]slot[K, V], capacity)}
}

func (m *Map[K, V]) index(key K) int {
	return int(uint64(key) % uint64(len(m.slots)))
}

// Insert adds or replaces the entry for key. A key that is already live
// keeps its slot and only the value changes; otherwise the first reusable
// slot (empty or tombstoned) in the probe sequence is claimed. A removed
// and re-added key therefore never occupies two live slots at once.
//
// Insert returns ErrFull when every slot holds a live entry for a
// different key, leaving the map unchanged.
func (m *Map[K, V]) Insert(key K, value V) error {
	free := -1
	start := m.index(key)
probe:
	for i := 0; i < len(m.slots); i++ {
		s := &m.slots[(start+i)%len(m.slots)]
		switch {
		case !s.occupied:
			// The probe chain ends here; the key cannot appear beyond.
			if free < 0 {
				free = (start + i) % len(m.slots)
			}
			break probe
		case s.deleted:
			if free < 0 {
				free = (start + i) % len(m.slots)
			}
		case s.key == key:
			s.value = value
			return nil
		}
	}
	if free < 0 {
		return ErrFull
	}
	s := &m.slots[free]
	s.key = key
	s.value = value
	s.occupied = true
	s.deleted = false
	return nil
}

// Find returns a pointer to the stored value for key, or (nil, false) if
// the key is absent. The pointer gives read/write access to the slot and
// stays valid until the key is removed. Probing stops at the first slot
// that has never been occupied; tombstones keep the chain intact.
func (m *Map[K, V]) Find(key K) (*V, bool) {
	start := m.index(key)
	for i := 0; i < len(m.slots); i++ {
		s := &m.slots[(start+i)%len(m.slots)]
		if !s.occupied {
			return nil, false
		}
		if !s.deleted && s.key == key {
			return &s.value, true
		}
	}
	return nil, false
}

// Remove tombstones the entry for key and resets its key and value to
// their zero values. It reports whether the key was present.
func (m *Map[K, V]) Remove(key K) bool {
	start := m.index(key)
	for i := 0; i < len(m.slots); i++ {
		s := &m.slots[(start+i)%len(m.slots)]
		if !s.occupied {
			return false
		}
		if !s.deleted && s.key == key {
			var zeroK K
			var zeroV V
			s.deleted = true
			s.key = zeroK
			s.value = zeroV
			return true
		}
	}
	return false
}

// Len returns the number of live entries. It scans the whole slot array.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.slots {
		if m.slots[i].occupied && !m.slots[i].deleted {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the map holds no live entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Capacity returns the fixed slot count chosen at construction.
func (m *Map[K, V]) Capacity() int {
	return len(m.slots)
}

// All returns an iterator over live entries in table order (not insertion
// order). The yielded pointer gives read/write access to the stored value.
// The sequence is finite and restartable.
func (m *Map[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if !s.occupied || s.deleted {
				continue
			}
			if !yield(s.key, &s.value) {
				return
			}
		}
	}
}
