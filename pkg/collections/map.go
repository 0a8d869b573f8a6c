package collections

import (
	"iter"
	"slices"
)

// Map is a hash-indexed map whose iteration order is the current
// first-insertion order of its keys.
//
// The zero value is an empty map ready for use.
type Map[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// Set inserts or replaces the value for key. Replacing keeps the key's
// original position; a new key is appended at the end.
func (m *Map[K, V]) Set(key K, value V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value stored for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.vals[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.vals[key]
	return ok
}

// Delete removes key and closes the gap in the iteration order. It reports
// whether the key was present. A subsequent Set of the same key appends at
// the end.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// All iterates over entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.keys {
			if !yield(key, m.vals[key]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map.
func (m *Map[K, V]) Clone() Map[K, V] {
	out := Map[K, V]{keys: slices.Clone(m.keys)}
	if m.vals != nil {
		out.vals = make(map[K]V, len(m.vals))
		for k, v := range m.vals {
			out.vals[k] = v
		}
	}
	return out
}

// Equal reports whether two maps hold equal entries in the same order,
// comparing values with eq.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		if !eq(m.vals[key], other.vals[key]) {
			return false
		}
	}
	return true
}
