package seq

import "iter"

// This file contains the lazy pipeline adapters. Each adapter wraps an
// existing sequence and produces a new one that computes elements on demand;
// no intermediate slice is allocated. All adapters honour early termination:
// when the consumer stops ranging, the underlying source stops being pulled.

// Filter returns a sequence yielding only the elements of src for which fn
// returns true.
func Filter[E any](src iter.Seq[E], fn func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range src {
			if !fn(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Map returns a sequence yielding fn applied to each element of src.
//
// Like the package-level functions in the containers package, Map must be a
// standalone function because Go methods cannot introduce new type
// parameters.
func Map[E, U any](src iter.Seq[E], fn func(E) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Take returns a sequence yielding at most the first n elements of src.
// n <= 0 yields an empty sequence.
func Take[E any](src iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range src {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Drop returns a sequence skipping the first n elements of src and yielding
// the rest. n <= 0 yields src unchanged.
func Drop[E any](src iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		skipped := 0
		for v := range src {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
