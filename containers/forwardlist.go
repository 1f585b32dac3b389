package containers

import "iter"

// ForwardList is a singly linked list whose only insertion capability is
// [ForwardList.InsertFront].
//
// Because every element is inserted at the head, populating a ForwardList
// from a sequence yields the reverse of the arrival order. This is the
// inherent behaviour of front-only insertion, not a defect: a caller who
// needs arrival order in a ForwardList should reverse the source first.
type ForwardList[E any] struct {
	head *node[E]
	size int
}

type node[E any] struct {
	val  E
	next *node[E]
}

// NewForwardList creates an empty ForwardList. Its signature matches the
// kind-factory shape expected by collect.Into.
func NewForwardList[E any]() *ForwardList[E] {
	return &ForwardList[E]{}
}

// InsertFront inserts v at the head of the list.
func (l *ForwardList[E]) InsertFront(v E) {
	l.head = &node[E]{val: v, next: l.head}
	l.size++
}

// Front returns the head element together with a presence flag.
func (l *ForwardList[E]) Front() (E, bool) {
	var zero E
	if l.head == nil {
		return zero, false
	}
	return l.head.val, true
}

// Len returns the number of elements in the list.
func (l *ForwardList[E]) Len() int { return l.size }

// All returns the elements as a slice, head first.
func (l *ForwardList[E]) All() []E {
	out := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Values returns an iterator over the elements, head first.
func (l *ForwardList[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
