// Package collect populates a container kind from a sequence of elements in
// a single forward pass.
//
// # The populator
//
// [Into] takes a sequence (any iter.Seq[E]) and a kind factory (any
// func() C), constructs one empty container, resolves an insertion strategy
// exactly once, and inserts every traversed element:
//
//	list, err := collect.Into(seq.Of(1, 2, 3), containers.NewList[int])
//	set, err  := collect.Into(seq.Of('a', 'b', 'a'), containers.NewSet[rune])
//
// Two insertion capabilities are recognised, discovered structurally on the
// constructed container:
//
//   - [Inserter] — Insert(E): generic insertion at the kind's natural
//     position (append for lists, membership for sets).
//   - [FrontInserter] — InsertFront(E): insertion at the logical front,
//     for singly-linked kinds that support nothing else.
//
// Generic insertion wins whenever both are available; front insertion is
// chosen only when it is the sole capability. The choice is fixed per call
// before the first element is traversed — there is no per-element dispatch.
// A kind offering neither capability (for example a key/value
// [containers.Dict]) yields [ErrCapabilityUnsupported] and no container.
//
// # Statically checked variants
//
// [Emplace] and [Front] move the capability requirement into the type
// constraint, so an unsupported kind fails to compile instead of returning
// an error:
//
//	list := collect.Emplace(seq.Range(1, 4), containers.NewList[int])
//	fl   := collect.Front(seq.Of(1, 2, 3), containers.NewForwardList[int])
//
// Element and container types are inferred from the arguments in all entry
// points; call sites never spell out type parameters.
//
// # Lazy sources
//
// A composed pipeline (seq.Filter, seq.Drop, …) is an ordinary iter.Seq and
// populates identically to a concrete slice; elements are materialized as
// the single traversal pulls them.
package collect
