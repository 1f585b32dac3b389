package collect

import "errors"

// Sentinel errors returned by the populator.

// ErrCapabilityUnsupported is returned by [Into] when the constructed
// container kind exposes neither [Inserter] nor [FrontInserter] for the
// source's element type. The check runs before any element is traversed, so
// no partially populated container ever exists.
//
// Use [errors.Is] for comparisons; the returned error wraps this sentinel
// together with the concrete container type.
var ErrCapabilityUnsupported = errors.New("collect: container kind supports no insertion capability")
