package observe

import "runtime"

// The abandonment safety net covers instances that rendered (and therefore
// created a reaction subscribed to live atoms) but were discarded before the
// host ever committed a mount. Normal disposal runs through Unmount; an
// abandoned handle never gets one, so the reaction would stay subscribed
// forever.
//
// The net is a finalizer on the handle itself. The admin record deliberately
// never references the handle, so once the host drops it the handle becomes
// unreachable even while external atoms still hold the reaction, and the
// finalizer disposes the orphan. Best-effort and non-deterministic; mount
// disarms it because unmount is the reliable path from then on.

// registerAbandoned arms the safety net for a handle whose reaction exists
// before mount.
func registerAbandoned(o *Observed) {
	runtime.SetFinalizer(o, finalizeAbandoned)
}

// unregisterAbandoned disarms the safety net. Called unconditionally on
// mount; harmless when nothing is armed.
func unregisterAbandoned(o *Observed) {
	runtime.SetFinalizer(o, nil)
}

// finalizeAbandoned disposes the orphaned reaction. Runs on the finalizer
// goroutine when an armed handle is reclaimed.
func finalizeAbandoned(o *Observed) {
	o.admin.dispose()
}
