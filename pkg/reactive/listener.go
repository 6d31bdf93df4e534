package reactive

// Listener is anything that can be notified when an atom it observed is
// marked changed. Reactions and computed values implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// For a Reaction this fires its invalidation callback; for a Computed it
	// drops the cached value.
	MarkDirty()

	// ID returns a unique identifier for this listener, used for
	// deduplication during batch processing.
	ID() uint64
}

// sourceTracker is implemented by listeners that record which atoms they
// read during a tracked run, so stale subscriptions can be dropped on the
// next run and on disposal.
type sourceTracker interface {
	addSource(a *Atom)
}
