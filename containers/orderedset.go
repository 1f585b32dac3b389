package containers

import (
	"encoding/json"
	"iter"

	"gopkg.in/yaml.v3"
)

// OrderedSet is a unique-element container that preserves first-insertion
// order: re-inserting a value neither duplicates it nor moves it.
type OrderedSet[E comparable] struct {
	seen  map[E]struct{}
	order []E
}

// NewOrderedSet creates an empty OrderedSet. Its signature matches the
// kind-factory shape expected by collect.Into.
func NewOrderedSet[E comparable]() *OrderedSet[E] {
	return &OrderedSet[E]{seen: make(map[E]struct{})}
}

// Insert adds v unless it is already present.
func (s *OrderedSet[E]) Insert(v E) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

// Has reports whether v is in the set.
func (s *OrderedSet[E]) Has(v E) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of distinct elements.
func (s *OrderedSet[E]) Len() int { return len(s.order) }

// All returns a copy of the elements in first-insertion order.
func (s *OrderedSet[E]) All() []E {
	out := make([]E, len(s.order))
	copy(out, s.order)
	return out
}

// Values returns an iterator over the elements in first-insertion order.
func (s *OrderedSet[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}

// ToJSON serialises the elements to a JSON array in first-insertion order.
func (s *OrderedSet[E]) ToJSON() ([]byte, error) {
	return json.Marshal(s.order)
}

// ToYAML serialises the elements to a YAML sequence in first-insertion order.
func (s *OrderedSet[E]) ToYAML() ([]byte, error) {
	return yaml.Marshal(s.order)
}
