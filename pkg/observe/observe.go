package observe

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/reactview-dev/reactview/pkg/reactive"
)

// Observed is the synchronized handle around one component instance. The
// host drives it through Render, Mount, ShouldUpdate, and Unmount; the
// handle keeps the component's tracked dependencies, version tokens, and
// delivery cell in step.
type Observed struct {
	component Component
	admin     *admin
}

// Option configures an Observed at wrap time.
type Option func(*admin)

// WithLogger sets the logger used for diagnostic-only conditions. The
// default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(a *admin) {
		a.log = log
	}
}

// WithMetrics attaches a metrics set. The default records nothing.
func WithMetrics(m *Metrics) Option {
	return func(a *admin) {
		a.metrics = m
	}
}

// WithStaticRendering marks the instance as belonging to a non-interactive
// render pass: invalidations while mounted are logged and dropped instead of
// delivered.
func WithStaticRendering() Option {
	return func(a *admin) {
		a.static = true
	}
}

// WithName overrides the diagnostic name derived from the component type.
func WithName(name string) Option {
	return func(a *admin) {
		a.name = name
	}
}

// Observe wraps target in a reactive synchronizer. Configuration problems
// are rejected here, before any instance state exists: a target that cannot
// render, a target already wrapped, a deprecated lifecycle hook, or a
// conflicting update-decision hook.
func Observe(target any, opts ...Option) (*Observed, error) {
	if target == nil {
		return nil, ErrNotRenderable
	}
	if _, ok := target.(*Observed); ok {
		return nil, ErrAlreadyObserved
	}
	c, ok := target.(Component)
	if !ok {
		return nil, ErrNotRenderable
	}
	if _, ok := target.(updateDecider); ok {
		return nil, ErrUpdateDeciderConflict
	}
	if _, ok := target.(deprecatedReceiver); ok {
		return nil, ErrDeprecatedHook
	}

	a := newAdmin(fmt.Sprintf("%T", target))
	for _, opt := range opts {
		opt(a)
	}

	return &Observed{component: c, admin: a}, nil
}

// Name returns the instance's diagnostic label.
func (o *Observed) Name() string {
	return o.admin.name
}

// Render executes the component's render inside the tracked reaction,
// creating the reaction lazily on first use and after disposal. A reaction
// created while unmounted is registered with the abandonment safety net. On
// success the committed token catches up to the pending one; on error or
// panic it does not, so a later retry is still recognized as stale.
func (o *Observed) Render() (out any, err error) {
	a := o.admin

	a.mu.Lock()
	if a.reaction == nil {
		a.reaction = reactive.NewReaction(a.name, a.onInvalidate)
		if !a.mounted {
			registerAbandoned(o)
		}
	}
	r := a.reaction
	a.mu.Unlock()

	r.Track(func() {
		reactive.ObservationOnly(func() {
			out, err = o.component.Render()
		})
	})
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.committed = a.pending
	a.mu.Unlock()

	a.metrics.incRenders()
	return out, nil
}

// Mount records the instance as framework-owned: the safety net is
// disarmed and staleness is resynchronized. If the reaction is missing or an
// invalidation landed between render and mount commit, a fresh pending token
// is minted and the registered notify callback requests one extra pass.
// The component's own Mounted hook, if any, runs last.
func (o *Observed) Mount() {
	a := o.admin

	a.mu.Lock()
	a.mounted = true
	resync := a.reaction == nil || a.pending != a.committed
	var notify func()
	if resync {
		a.pending = NewVersion()
		notify = a.notify
	}
	a.mu.Unlock()

	unregisterAbandoned(o)

	if resync {
		a.metrics.incMountResyncs()
		if notify != nil {
			notify()
		}
	}

	if m, ok := o.component.(Mounter); ok {
		m.Mounted()
	}
}

// ShouldUpdate is the update-decision hook. It compares the proposed inputs
// shallowly against the cached ones, ORs in token staleness, mints a fresh
// pending token when an update is warranted, and pre-classifies both
// proposed values so the host's subsequent setter calls skip re-deriving the
// comparison. The host decides whether to commit based on the return value.
func (o *Observed) ShouldUpdate(nextProps Props, nextState State) bool {
	a := o.admin

	a.mu.Lock()
	// Markers left over from a previous decision whose commit never
	// materialized are dead; drop them so the sets stay bounded.
	a.writtenByEngine.reset()
	a.writtenNoOp.reset()

	propsChanged := !ShallowEqual(a.props.value, nextProps)
	stateChanged := !ShallowEqual(a.state.value, nextState)
	should := propsChanged || stateChanged || a.pending != a.committed

	if should {
		a.pending = NewVersion()
	}
	if propsChanged {
		a.writtenByEngine.add(nextProps)
	} else {
		a.writtenNoOp.add(nextProps)
	}
	if stateChanged {
		a.writtenByEngine.add(nextState)
	} else {
		a.writtenNoOp.add(nextState)
	}
	a.mu.Unlock()

	if !should {
		a.metrics.incSkippedUpdates()
	}
	return should
}

// Unmount disposes the reaction (idempotently), clears the handle, and
// drops the mount flag. The component's own Unmounted hook, if any, runs
// after engine cleanup.
func (o *Observed) Unmount() {
	o.admin.dispose()

	if u, ok := o.component.(Unmounter); ok {
		u.Unmounted()
	}
}

// OnNotify registers the hosting wrapper's update-request callback, used by
// Mount's resynchronization.
func (o *Observed) OnNotify(fn func()) {
	o.admin.mu.Lock()
	o.admin.notify = fn
	o.admin.mu.Unlock()
}

// Cell returns the update-delivery bridge for this instance. The hosting
// wrapper subscribes to it and reads its value as the render snapshot.
func (o *Observed) Cell() *Cell {
	return o.admin.cell
}

// Props reads the props input, recording a dependency on the props atom.
func (o *Observed) Props() Props {
	p, _ := o.admin.read(&o.admin.props).(Props)
	return p
}

// State reads the state input, recording a dependency on the state atom.
func (o *Observed) State() State {
	s, _ := o.admin.read(&o.admin.state).(State)
	return s
}

// Context reads the ambient context input, recording a dependency on the
// context atom.
func (o *Observed) Context() any {
	return o.admin.read(&o.admin.context)
}

// SetProps commits a props value through the input bridge.
func (o *Observed) SetProps(p Props) {
	o.admin.write(&o.admin.props, p)
}

// SetState commits a state value through the input bridge.
func (o *Observed) SetState(s State) {
	o.admin.write(&o.admin.state, s)
}

// SetContext commits an ambient context value through the input bridge.
func (o *Observed) SetContext(v any) {
	o.admin.write(&o.admin.context, v)
}
