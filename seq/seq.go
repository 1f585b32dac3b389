package seq

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a sequence that yields items in the given order.
func Of[E any](items ...E) iter.Seq[E] {
	return FromSlice(items)
}

// FromSlice returns a sequence over s.
//
// The slice is not copied: mutating s before the sequence is consumed
// changes what is yielded. Wrap with a copy first if the source may be
// mutated concurrently.
func FromSlice[E any](s []E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns the half-open integer sequence [from, to).
// An empty sequence is returned when to <= from.
func Range(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

// Count consumes src and returns the number of elements it yields.
func Count[E any](src iter.Seq[E]) int {
	n := 0
	for range src {
		n++
	}
	return n
}
