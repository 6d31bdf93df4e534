package reactive

import (
	"reflect"
	"sync"
)

// Signal is a reactive value container layered on an Atom. Reading it inside
// a tracked scope subscribes the current listener; writing a value that is
// not equal to the current one marks the atom changed.
type Signal[T any] struct {
	atom *Atom

	// value is the current signal value, guarded by mu.
	value T
	mu    sync.RWMutex

	// equal overrides the default equality check when non-nil.
	equal func(T, T) bool
}

// NewSignal creates a signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		atom:  NewAtom("signal"),
		value: initial,
	}
}

// WithEquals configures a custom equality function and returns the signal.
// Useful for types where reflect.DeepEqual is too expensive or has the wrong
// semantics.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Get returns the current value and records a dependency for the current
// listener, if any.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	// Report after releasing the value lock to keep lock ordering flat.
	s.atom.ReportObserved()
	return value
}

// Peek returns the current value without recording a dependency.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies dependents if it changed. Inside an
// ObservationOnly scope it panics before mutating anything.
func (s *Signal[T]) Set(value T) {
	assertWritable()

	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.atom.ReportChanged()
	}
}

// Update atomically reads and replaces the value through fn.
func (s *Signal[T]) Update(fn func(T) T) {
	assertWritable()

	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.atom.ReportChanged()
	}
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for comparable dynamic types and reflect.DeepEqual
// for the rest.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == bv
	}
	if t := reflect.TypeOf(av); t.Comparable() && t == reflect.TypeOf(bv) {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}
