package util

// OrderedSet is a collection of unique values that remembers insertion order.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	index map[T]int
	items []T
}

// NewOrderedSet creates a set holding values in the order given, duplicates
// removed.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of values in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the values in insertion order.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

