// Package seq provides constructors and lazy pipeline adapters for
// sequences, expressed as the standard library's iter.Seq[E].
//
// # Sequences
//
// A sequence is an ordered, finite source of elements that supports a
// single forward traversal. Anything that can be expressed as an
// iter.Seq[E] is a valid source for the collect package:
//
//	src := seq.Of(1, 2, 3)
//	src := seq.FromSlice(users)
//	src := seq.Range(1, 21) // 1 … 20
//
// # Lazy pipelines
//
// Adapters compose without materializing intermediate slices. Elements are
// produced on demand when the resulting sequence is consumed:
//
//	evens := seq.Filter(seq.Range(1, 101), func(n int) bool { return n%2 == 0 })
//	firstTen := seq.Take(evens, 10)
//	names := seq.Map(firstTen, strconv.Itoa)
//
// A composed pipeline is an ordinary iter.Seq and can be handed directly to
// collect.Into or ranged over with a for statement.
//
// # Single-pass sources
//
// Adapters traverse their input at most once per consumption and stop
// yielding as soon as the consumer stops. Sequences built by this package
// from slices are re-iterable; sequences wrapping external single-pass
// sources should only be consumed once.
package seq
