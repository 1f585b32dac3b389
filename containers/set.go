package containers

import "iter"

// Set is a map-backed unique-element container. Traversal order is
// unspecified; use [OrderedSet] when first-insertion order matters.
type Set[E comparable] struct {
	items map[E]struct{}
}

// NewSet creates an empty Set. Its signature matches the kind-factory shape
// expected by collect.Into.
func NewSet[E comparable]() *Set[E] {
	return &Set[E]{items: make(map[E]struct{})}
}

// SetOf creates a Set holding the distinct values among items.
func SetOf[E comparable](items ...E) *Set[E] {
	s := NewSet[E]()
	for _, v := range items {
		s.Insert(v)
	}
	return s
}

// Insert adds v to the set. Inserting a value already present is a no-op;
// duplicates collapse per the set's uniqueness rule.
func (s *Set[E]) Insert(v E) {
	s.items[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s *Set[E]) Has(v E) bool {
	_, ok := s.items[v]
	return ok
}

// Delete removes v and reports whether it was present.
func (s *Set[E]) Delete(v E) bool {
	_, ok := s.items[v]
	delete(s.items, v)
	return ok
}

// Len returns the number of distinct elements.
func (s *Set[E]) Len() int { return len(s.items) }

// All returns the elements as a slice in unspecified order.
func (s *Set[E]) All() []E {
	out := make([]E, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	return out
}

// Values returns an iterator over the elements in unspecified order.
func (s *Set[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
