package containers

import "iter"

// Container is the read surface shared by every kind in this package.
//
// Accept Container in your own functions so that consumers can substitute
// alternative implementations without depending on a concrete kind. The
// Values iterator makes any Container usable as a source for further
// population (round-tripping a container through collect.Into yields an
// equal container for order-preserving kinds).
type Container[E any] interface {
	// Len returns the number of elements currently held.
	Len() int

	// All returns a copy of every element as a plain Go slice, in the
	// kind's traversal order.
	All() []E

	// Values returns a single-pass iterator over the elements in the
	// kind's traversal order.
	Values() iter.Seq[E]
}

// Dict is not a Container: it traverses pairs, not elements.
var (
	_ Container[int] = (*List[int])(nil)
	_ Container[int] = (*Set[int])(nil)
	_ Container[int] = (*OrderedSet[int])(nil)
	_ Container[int] = (*ForwardList[int])(nil)
)
