// Package containers provides the concrete container kinds that the collect
// package can populate: a back-insertable list, unordered and
// insertion-ordered unique sets, a front-insertion-only singly linked list,
// and a key/value dictionary.
//
// # Container kinds and capabilities
//
// Every kind exposes the read surface in [Container]: Len, All, and a
// Values iterator, so a populated container is itself a valid sequence
// source. Insertion capabilities differ per kind:
//
//   - [List]        — Insert (append) and InsertFront (prepend)
//   - [Set]         — Insert (unique, unordered)
//   - [OrderedSet]  — Insert (unique, first-insertion order)
//   - [ForwardList] — InsertFront only
//   - [Dict]        — Put(key, value); no single-element insertion at all
//
// The collect package discovers these capabilities structurally; kinds
// defined outside this package participate by implementing the same
// methods.
//
// # Mutability
//
// Unlike an immutable pipeline collection, kinds in this package mutate in
// place: insertion methods modify the receiver. None of the kinds are
// internally synchronized; a container must not be shared across goroutines
// while it is being populated.
package containers
