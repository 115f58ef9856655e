// Package obj provides the object model for PDF-style document graphs.
//
// # Overview
//
// A document is a graph of Value nodes: null, boolean, integer, real,
// string, name, array, dictionary and stream. Code never holds a Value
// bare; it holds a Handle, which is either direct, exclusively owning an
// inline value, or indirect, a lightweight reference to a value
// registered in a Graph that any number of parents may alias.
//
// The distinction drives copying and mutation visibility. Copy takes a
// snapshot: direct children are deep-cloned, indirect children stay
// aliases of their shared target. Mutating a direct child of a copy is
// invisible to the original; mutating through an indirect child is
// visible to every alias.
//
// # Sequence operations
//
// Array nodes implement the full mutable-sequence surface:
// Append, Extend, Insert, Pop, Remove, Reverse, Clear, Count,
// Index, Copy, integer and slice subscripts, concatenation. Slice
// subscripts take a Slice specification with optional start, stop and
// step, including negative strides, resolved against the array length
// with standard clamping.
//
// Every sequence operation is exposed on every handle kind; dispatch
// checks the resolved kind first and produces a kind-specific diagnostic
// when it is not an array. The diagnostics are part of the compatibility
// contract, callers match on their text.
//
// # Errors
//
// Failures wrap the package sentinels (ErrTypeMismatch, ErrItemNotFound,
// ErrIndexOutOfRange, ErrLengthMismatch, ErrZeroStep, ErrKeyNotFound) and
// are all-or-nothing: a failed operation leaves its container unchanged.
//
// Arithmetic dispatch is the exception to error returns: Add lets each
// operand decline a combination with a not-applicable sentinel and only
// the top-level combinator diagnoses incompatible kinds.
package obj
