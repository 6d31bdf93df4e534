package observe

import "errors"

// Configuration errors, returned synchronously by Observe before any
// instance state is created.
var (
	// ErrNotRenderable is returned when the wrap target does not implement
	// Component.
	ErrNotRenderable = errors.New("observe: target does not implement Component")

	// ErrAlreadyObserved is returned when the wrap target is itself an
	// *Observed. Wrapping twice would double every notification.
	ErrAlreadyObserved = errors.New("observe: target is already observed")

	// ErrDeprecatedHook is returned when the wrap target declares the
	// retired ComponentWillReceiveProps hook, which ran before the input
	// bridge existed and can no longer be sequenced correctly.
	ErrDeprecatedHook = errors.New("observe: target declares the deprecated ComponentWillReceiveProps hook")

	// ErrUpdateDeciderConflict is returned when the wrap target defines its
	// own ShouldUpdate. The synchronizer owns the update decision; a second
	// decider would race it.
	ErrUpdateDeciderConflict = errors.New("observe: target defines its own ShouldUpdate hook")
)
