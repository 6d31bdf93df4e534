package observe

import "sync"

// Cell is the update-delivery bridge: one version token plus a set of
// listener callbacks. The hosting wrapper subscribes once per instance and
// reads Value as its render snapshot; Set with an unchanged token is a
// no-op, so convergent invalidation sources collapse into a single
// notification.
type Cell struct {
	mu        sync.Mutex
	version   Version
	nextSubID uint64
	listeners map[uint64]func()
}

// NewCell creates a cell holding the zero token and no listeners.
func NewCell() *Cell {
	return &Cell{listeners: make(map[uint64]func())}
}

// Value returns the currently stored token.
func (c *Cell) Value() Version {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Set replaces the stored token and synchronously notifies every listener,
// unless the token equals the stored one, in which case nothing happens.
func (c *Cell) Set(v Version) {
	c.mu.Lock()
	if v == c.version {
		c.mu.Unlock()
		return
	}
	c.version = v
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Multiple concurrent listeners are supported; in practice one hosting
// wrapper subscribes per instance.
func (c *Cell) Subscribe(fn func()) func() {
	c.mu.Lock()
	c.nextSubID++
	id := c.nextSubID
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}
