// Package reactive provides the dependency-tracking primitives that the
// observe package synchronizes against: atoms, reactions, signals, and
// computed values.
//
// An Atom is a single invalidation signal with no payload. Reading it inside
// a tracked scope (Reaction.Track, a Computed recomputation) subscribes the
// current listener; marking it changed notifies every subscriber
// synchronously on the mutating goroutine.
//
// Batch groups multiple changes into one deduplicated notification phase.
// Untracked suppresses dependency recording, and ObservationOnly establishes
// a scope in which any attempt to mark an atom changed panics with
// ErrObservationOnly.
package reactive
