package reactive

// Batch groups multiple atom changes into a single notification phase.
// Changes reported within the batch function are collected, deduplicated by
// listener ID, and delivered once when the outermost batch completes.
//
// Batches can be nested; notifications only fire when the outermost one
// finishes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// Dependents are notified once for both changes.
func Batch(fn func()) {
	ctx := currentContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flushPendingUpdates(ctx)
		}
	}()

	fn()
}

// flushPendingUpdates deduplicates and notifies all listeners queued during
// a batch.
func flushPendingUpdates(ctx *trackingContext) {
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, l := range updates {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}

// Untracked runs fn without recording dependencies: atom reads inside the
// function do not subscribe the current listener.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// ObservationOnly runs fn in a scope where atoms may be observed but not
// changed. Any ReportChanged inside the scope panics with
// ErrObservationOnly. The scope is restored even when fn panics, so render
// errors propagate to the caller with tracking state intact.
func ObservationOnly(fn func()) {
	old := setObservationOnly(true)
	defer setObservationOnly(old)
	fn()
}
