package collections

import "iter"

// Set is an insertion-ordered set: a [Map] from elements to nothing.
//
// The zero value is an empty set ready for use.
type Set[T comparable] struct {
	m Map[T, struct{}]
}

// NewSet builds a set from items, preserving first-occurrence order.
func NewSet[T comparable](items ...T) Set[T] {
	var s Set[T]
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was newly added. Adding an
// existing item keeps its original position and returns false.
func (s *Set[T]) Add(item T) bool {
	if s.m.Has(item) {
		return false
	}
	s.m.Set(item, struct{}{})
	return true
}

// Has reports whether item is present.
func (s *Set[T]) Has(item T) bool { return s.m.Has(item) }

// Delete removes item, reporting whether it was present. A later re-Add
// appends at the end.
func (s *Set[T]) Delete(item T) bool { return s.m.Delete(item) }

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.m.Len() }

// Items returns the elements in insertion order. The slice is a copy.
func (s *Set[T]) Items() []T { return s.m.Keys() }

// All iterates over elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Equal reports whether two sets hold the same elements in the same order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.m.Equal(&other.m, func(a, b struct{}) bool { return true })
}
