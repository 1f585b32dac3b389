package collect

import "iter"

// Into constructs a container via the kind factory and populates it with
// every element of src, traversed once in order.
//
// The insertion strategy is resolved exactly once, before the first element
// is pulled from src: if the container implements [Inserter] for E each
// element is inserted generically; otherwise, if it implements
// [FrontInserter], each element is inserted at the front. A kind offering
// neither capability returns [ErrCapabilityUnsupported] with no traversal
// performed and no container produced.
//
// src is read-only from Into's perspective and is never retained. The
// returned container is owned exclusively by the caller.
func Into[C, E any](src iter.Seq[E], kind func() C, opts ...Option) (C, error) {
	c := kind()
	strat, err := resolve[E](any(c))
	if err != nil {
		var zero C
		return zero, err
	}
	for _, opt := range opts {
		opt(any(c))
	}
	switch strat {
	case strategyEmplace:
		ins := any(c).(Inserter[E])
		for v := range src {
			ins.Insert(v)
		}
	case strategyFront:
		fr := any(c).(FrontInserter[E])
		for v := range src {
			fr.InsertFront(v)
		}
	}
	return c, nil
}

// Emplace populates a container whose kind supports generic insertion.
// The capability requirement lives in the type constraint, so an
// unsupported kind is a compile-time failure rather than a runtime error.
func Emplace[C Inserter[E], E any](src iter.Seq[E], kind func() C, opts ...Option) C {
	c := kind()
	for _, opt := range opts {
		opt(any(c))
	}
	for v := range src {
		c.Insert(v)
	}
	return c
}

// Front populates a container whose kind supports front insertion. Elements
// arrive at the logical front, so the result traverses in the reverse of
// src's order.
func Front[C FrontInserter[E], E any](src iter.Seq[E], kind func() C, opts ...Option) C {
	c := kind()
	for _, opt := range opts {
		opt(any(c))
	}
	for v := range src {
		c.InsertFront(v)
	}
	return c
}

// Slice collects src into a plain []E, in traversal order.
func Slice[E any](src iter.Seq[E]) []E {
	out := []E{}
	for v := range src {
		out = append(out, v)
	}
	return out
}
