package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for one goroutine. Each goroutine
// gets its own context so concurrent renders do not observe each other's
// dependencies.
type trackingContext struct {
	// currentListener is what is currently tracking dependencies.
	// nil means reads do not create subscriptions.
	currentListener Listener

	// observationOnly marks a scope in which atoms may be observed but not
	// changed. ReportChanged panics while this is set.
	observationOnly bool

	// batchDepth tracks nested Batch calls. When > 0, changes queue their
	// notifications instead of firing immediately.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when the outermost
	// batch completes. Deduplicated by ID before notification.
	pendingUpdates []Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// goroutineID extracts the current goroutine's ID from the runtime stack.
// Implementation detail; never exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack header is "goroutine <id> ...".
	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// currentContext returns the tracking context for the current goroutine,
// creating one if needed.
func currentContext() *trackingContext {
	gid := goroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// currentListener returns the listener being tracked, or nil when no
// tracking is active.
func currentListener() Listener {
	return currentContext().currentListener
}

// setCurrentListener swaps the current listener and returns the previous one
// so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := currentContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// inObservationOnly reports whether the current goroutine is inside an
// ObservationOnly scope.
func inObservationOnly() bool {
	return currentContext().observationOnly
}

// setObservationOnly swaps the observation-only flag and returns the
// previous value.
func setObservationOnly(v bool) bool {
	ctx := currentContext()
	old := ctx.observationOnly
	ctx.observationOnly = v
	return old
}

// assertWritable panics with ErrObservationOnly inside an ObservationOnly
// scope. Mutation paths call it before touching any state, so a rejected
// write leaves no partial effect behind.
func assertWritable() {
	if inObservationOnly() {
		panic(ErrObservationOnly)
	}
}

// WithListener runs fn with l as the current listener. Used internally to
// set up dependency tracking; exposed for hosts that implement their own
// tracked computations.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}
