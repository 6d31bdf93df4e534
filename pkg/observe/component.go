package observe

// Props are the render inputs supplied by the host around the component.
type Props map[string]any

// State is the component-internal input category, owned by the component but
// committed through the host.
type State map[string]any

// Component is the stateful unit the synchronizer binds to the reactive
// engine. Render must be synchronous; it may read signals, computeds, and
// the handle's inputs, all of which become tracked dependencies. Mutating
// observable state inside Render panics with reactive.ErrObservationOnly.
type Component interface {
	Render() (any, error)
}

// Mounter is an optional hook invoked after the synchronizer's own mount
// work completes.
type Mounter interface {
	Mounted()
}

// Unmounter is an optional hook invoked after the synchronizer has disposed
// the reaction on unmount. Engine cleanup runs first so the hook observes a
// quiescent instance; it never preempts that cleanup.
type Unmounter interface {
	Unmounted()
}

// updateDecider marks a component that declares its own update decision.
// The synchronizer owns ShouldUpdate, so Observe rejects such targets.
type updateDecider interface {
	ShouldUpdate(next Props, nextState State) bool
}

// deprecatedReceiver marks a component carrying the retired
// ComponentWillReceiveProps hook. Observe rejects such targets.
type deprecatedReceiver interface {
	ComponentWillReceiveProps(next Props)
}
