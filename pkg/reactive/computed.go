package reactive

import (
	"sync"
	"sync/atomic"
)

// Computed is a cached derivation that tracks its own dependencies. When any
// atom read during the last computation changes, the cache is dropped and
// the computed's own atom is marked changed, so dependents re-derive through
// it on their next read.
//
// Computeds are lazy: the function only runs on Get with a stale cache.
type Computed[T any] struct {
	id   uint64
	atom *Atom

	// compute produces the derived value.
	compute func() T

	// value is the cached result, guarded by mu.
	value T
	mu    sync.RWMutex

	// valid reports whether value is current.
	valid atomic.Bool

	// sources are the atoms read during the last computation.
	sources   []*Atom
	sourcesMu sync.Mutex
}

var _ Listener = (*Computed[int])(nil)

// NewComputed creates a computed value. The computation does not run until
// the first Get.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		id:      nextID(),
		atom:    NewAtom("computed"),
		compute: compute,
	}
}

// Get returns the derived value, recomputing if a dependency changed since
// the last read, and records a dependency on the computed for the current
// listener.
func (c *Computed[T]) Get() T {
	c.atom.ReportObserved()

	if !c.valid.Load() {
		c.recompute()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Peek returns the cached value without recording a dependency or
// recomputing.
func (c *Computed[T]) Peek() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// ID implements the Listener interface.
func (c *Computed[T]) ID() uint64 {
	return c.id
}

// MarkDirty drops the cached value and invalidates dependents.
// Implements the Listener interface.
func (c *Computed[T]) MarkDirty() {
	if c.valid.CompareAndSwap(true, false) {
		c.atom.ReportChanged()
	}
}

// recompute runs the computation with the computed as the current listener,
// swapping the recorded dependency set.
func (c *Computed[T]) recompute() {
	c.sourcesMu.Lock()
	for _, s := range c.sources {
		s.unsubscribe(c)
	}
	c.sources = c.sources[:0]
	c.sourcesMu.Unlock()

	var value T
	WithListener(c, func() {
		value = c.compute()
	})

	c.mu.Lock()
	c.value = value
	c.mu.Unlock()
	c.valid.Store(true)
}

// addSource records an atom observed during the current computation.
func (c *Computed[T]) addSource(a *Atom) {
	c.sourcesMu.Lock()
	defer c.sourcesMu.Unlock()

	for _, s := range c.sources {
		if s == a {
			return
		}
	}
	c.sources = append(c.sources, a)
}
