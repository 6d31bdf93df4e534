package reactive

import "sync"

// Atom is a minimal reactive primitive: one invalidation signal with no
// payload. Callers pair it with whatever state they cache themselves,
// reporting reads and writes so dependents are tracked and invalidated.
type Atom struct {
	id   uint64
	name string

	// subs are the listeners subscribed to this atom.
	subs []Listener

	// subMu protects the subs slice.
	subMu sync.RWMutex
}

// NewAtom creates an atom. The name is diagnostic only.
func NewAtom(name string) *Atom {
	return &Atom{
		id:   nextID(),
		name: name,
	}
}

// Name returns the diagnostic name given at construction.
func (a *Atom) Name() string {
	return a.name
}

// ID returns the unique identifier for this atom.
func (a *Atom) ID() uint64 {
	return a.id
}

// ReportObserved records a dependency on this atom for the current listener,
// if any. It returns true when a listener was subscribed, false when the
// read happened outside any tracked scope.
func (a *Atom) ReportObserved() bool {
	l := currentListener()
	if l == nil {
		return false
	}

	a.subscribe(l)
	if st, ok := l.(sourceTracker); ok {
		st.addSource(a)
	}
	return true
}

// ReportChanged marks the atom changed and notifies all subscribers.
// Inside a Batch the notifications are queued and deduplicated; otherwise
// they fire synchronously on the calling goroutine.
//
// Calling ReportChanged inside an ObservationOnly scope panics with
// ErrObservationOnly: mutation during a protected read window would corrupt
// the tracking the window exists to establish.
func (a *Atom) ReportChanged() {
	assertWritable()

	// Copy-before-notify so no lock is held while listeners run.
	a.subMu.RLock()
	subs := make([]Listener, len(a.subs))
	copy(subs, a.subs)
	a.subMu.RUnlock()

	ctx := currentContext()
	if ctx.batchDepth > 0 {
		ctx.pendingUpdates = append(ctx.pendingUpdates, subs...)
		return
	}

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// subscribe adds a listener, deduplicating by listener ID.
func (a *Atom) subscribe(l Listener) {
	if l == nil {
		return
	}

	a.subMu.Lock()
	defer a.subMu.Unlock()

	lid := l.ID()
	for _, existing := range a.subs {
		if existing.ID() == lid {
			return
		}
	}

	a.subs = append(a.subs, l)
}

// unsubscribe removes a listener. Removing one that is not subscribed is a
// no-op.
func (a *Atom) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	a.subMu.Lock()
	defer a.subMu.Unlock()

	lid := l.ID()
	for i, existing := range a.subs {
		if existing.ID() == lid {
			// Order does not matter; swap with the last element.
			a.subs[i] = a.subs[len(a.subs)-1]
			a.subs = a.subs[:len(a.subs)-1]
			return
		}
	}
}

// observerCount returns the number of subscribed listeners. Test helper.
func (a *Atom) observerCount() int {
	a.subMu.RLock()
	defer a.subMu.RUnlock()
	return len(a.subs)
}
