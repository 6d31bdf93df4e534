package reactive

import (
	"sync"
	"sync/atomic"
)

// Reaction is a tracked computation unit. Track runs a function with the
// reaction as the current listener, subscribing it to every atom read during
// the run. When any of those atoms is later marked changed, the invalidation
// callback fires synchronously on the mutating goroutine.
//
// Dependencies are swapped on every Track: atoms read during the previous
// run but not this one are unsubscribed before the new run records its
// sources.
type Reaction struct {
	id   uint64
	name string

	// onInvalidate fires when any tracked atom is marked changed.
	onInvalidate func()

	// sources are the atoms observed during the last Track run.
	sources   []*Atom
	sourcesMu sync.Mutex

	// disposed permanently stops invalidation delivery.
	disposed atomic.Bool
}

var _ Listener = (*Reaction)(nil)

// NewReaction creates a reaction with the given diagnostic name and
// invalidation callback. The callback must not be nil.
func NewReaction(name string, onInvalidate func()) *Reaction {
	return &Reaction{
		id:           nextID(),
		name:         name,
		onInvalidate: onInvalidate,
	}
}

// Name returns the diagnostic name given at construction.
func (r *Reaction) Name() string {
	return r.name
}

// ID returns the unique identifier for this reaction.
// Implements the Listener interface.
func (r *Reaction) ID() uint64 {
	return r.id
}

// MarkDirty delivers an invalidation to the reaction's callback.
// Implements the Listener interface. Disposed reactions drop the
// notification.
func (r *Reaction) MarkDirty() {
	if r.disposed.Load() {
		return
	}
	r.onInvalidate()
}

// Track runs fn with this reaction as the current listener, replacing the
// dependency set recorded by the previous run. Panics inside fn propagate
// to the caller after the previous listener is restored.
//
// Tracking on a disposed reaction still runs fn, but without recording
// dependencies; the caller is expected to have replaced the reaction by
// then.
func (r *Reaction) Track(fn func()) {
	if r.disposed.Load() {
		Untracked(fn)
		return
	}

	r.clearSources()
	WithListener(r, fn)
}

// Dispose unsubscribes the reaction from all tracked atoms and permanently
// stops invalidation delivery. Disposing twice, or disposing a reaction that
// never tracked anything, is a no-op.
func (r *Reaction) Dispose() {
	if r.disposed.Swap(true) {
		return
	}
	r.clearSources()
}

// IsDisposed reports whether Dispose has been called.
func (r *Reaction) IsDisposed() bool {
	return r.disposed.Load()
}

// addSource records an atom observed during the current Track run.
func (r *Reaction) addSource(a *Atom) {
	r.sourcesMu.Lock()
	defer r.sourcesMu.Unlock()

	for _, s := range r.sources {
		if s == a {
			return
		}
	}
	r.sources = append(r.sources, a)
}

// clearSources unsubscribes from every atom recorded by the last run.
func (r *Reaction) clearSources() {
	r.sourcesMu.Lock()
	defer r.sourcesMu.Unlock()

	for _, s := range r.sources {
		s.unsubscribe(r)
	}
	r.sources = r.sources[:0]
}
