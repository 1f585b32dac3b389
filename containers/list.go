package containers

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// List is a slice-backed, order-preserving sequence container.
//
// List exposes both insertion capabilities: [List.Insert] appends and
// [List.InsertFront] prepends. When a List is populated through
// collect.Into, generic insertion wins the capability tie-break, so the
// result preserves the source's traversal order.
type List[E any] struct {
	items []E
}

// NewList creates an empty List. Its signature matches the kind-factory
// shape expected by collect.Into.
func NewList[E any]() *List[E] {
	return &List[E]{items: []E{}}
}

// ListOf creates a List holding the given items (copied).
func ListOf[E any](items ...E) *List[E] {
	dst := make([]E, len(items))
	copy(dst, items)
	return &List[E]{items: dst}
}

// Insert appends v to the end of the list.
func (l *List[E]) Insert(v E) {
	l.items = append(l.items, v)
}

// InsertFront prepends v to the front of the list.
func (l *List[E]) InsertFront(v E) {
	l.items = append([]E{v}, l.items...)
}

// Grow pre-allocates capacity for at least n additional elements.
// It is the hint consumed by collect.WithCapacity.
func (l *List[E]) Grow(n int) {
	if n > 0 {
		l.items = slices.Grow(l.items, n)
	}
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int { return len(l.items) }

// All returns a copy of the underlying slice.
func (l *List[E]) All() []E {
	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// Values returns an iterator over the elements in list order.
func (l *List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[E]) Get(index int) (E, bool) {
	var zero E
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Contains reports whether at least one element satisfies fn.
func (l *List[E]) Contains(fn func(E) bool) bool {
	for _, v := range l.items {
		if fn(v) {
			return true
		}
	}
	return false
}

// Each calls fn(element, index) for every element.
func (l *List[E]) Each(fn func(E, int)) {
	for i, v := range l.items {
		fn(v, i)
	}
}

// ToJSON serialises the list elements to a JSON array.
func (l *List[E]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// ToYAML serialises the list elements to a YAML sequence.
func (l *List[E]) ToYAML() ([]byte, error) {
	return yaml.Marshal(l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[E]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// Dump prints a verbose, type-annotated rendering of the list to stdout and
// returns l for chaining. Intended for debugging.
func (l *List[E]) Dump() *List[E] {
	spew.Dump(l.items)
	return l
}

// ListEqual reports whether two lists hold equal elements in the same order.
func ListEqual[E comparable](a, b *List[E]) bool {
	return slices.Equal(a.items, b.items)
}
