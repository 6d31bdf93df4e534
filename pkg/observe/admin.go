package observe

import (
	"sync"

	"github.com/go-logr/logr"

	"github.com/reactview-dev/reactview/pkg/reactive"
)

// admin is the per-instance administration record. It owns the reaction
// handle, the mount flag, the version tokens, the three input categories,
// and the single-use marker sets that distinguish the synchronizer's own
// write-backs from external overwrites.
//
// admin deliberately carries no reference to the Observed handle or the
// component: the reaction's invalidation callback closes over the admin
// only, so an abandoned handle can become unreachable and the safety net's
// finalizer can still reach everything that needs disposing.
type admin struct {
	mu sync.Mutex

	// name is the diagnostic label, derived from the component type.
	name string

	// reaction is the tracked computation, nil when absent or disposed.
	reaction *reactive.Reaction

	// notify is registered by the hosting wrapper to request an update
	// pass. May be nil before the wrapper attaches.
	notify func()

	// mounted is true between Mount and Unmount.
	mounted bool

	// pending and committed are equal exactly when the instance has no
	// unconsumed invalidation.
	pending   Version
	committed Version

	// props, state, and context are the three input categories, each with
	// its own invalidation atom and cached value.
	props   input
	state   input
	context input

	// writtenByEngine and writtenNoOp hold values the synchronizer
	// pre-classified during ShouldUpdate. Entries are consumed by the first
	// write of the same value; an engine-classified write still propagates,
	// a no-op-classified one updates the cache silently.
	writtenByEngine markerSet
	writtenNoOp     markerSet

	// cell is the update-delivery bridge invalidations publish to while
	// mounted.
	cell *Cell

	// static suppresses delivery and logs instead; used for non-interactive
	// render passes.
	static bool

	log     logr.Logger
	metrics *Metrics
}

// input is one observable input category: an invalidation atom plus the
// cached current value.
type input struct {
	atom  *reactive.Atom
	value any
}

func newAdmin(name string) *admin {
	return &admin{
		name:    name,
		cell:    NewCell(),
		log:     logr.Discard(),
		props:   input{atom: reactive.NewAtom(name + ".props")},
		state:   input{atom: reactive.NewAtom(name + ".state")},
		context: input{atom: reactive.NewAtom(name + ".context")},
	}
}

// read records a dependency on the category's atom and returns the cached
// value. Inside reactive.Untracked the dependency is not reported.
func (a *admin) read(in *input) any {
	in.atom.ReportObserved()

	a.mu.Lock()
	defer a.mu.Unlock()
	return in.value
}

// write assigns a new value to the category. The three-way classification
// decides whether the assignment counts as a change:
//
//   - pre-classified by the engine: cache and propagate, the shallow
//     comparison already ran during ShouldUpdate;
//   - pre-classified as a no-op: cache silently, the value is known
//     equivalent;
//   - otherwise compare shallowly here, and on a real change mint a fresh
//     pending token before propagating.
//
// A shallow-equal external write replaces the cached identity without
// propagating.
func (a *admin) write(in *input, value any) {
	a.mu.Lock()
	changed := false
	switch {
	case a.writtenByEngine.consume(value):
		in.value = value
		changed = true
	case a.writtenNoOp.consume(value):
		in.value = value
	case !ShallowEqual(in.value, value):
		in.value = value
		a.pending = NewVersion()
		changed = true
	default:
		in.value = value
	}
	a.mu.Unlock()

	// Propagate outside the record lock: notification may synchronously
	// re-enter the instance.
	if changed {
		in.atom.ReportChanged()
	}
}

// onInvalidate is the reaction callback. It mints a fresh pending token and,
// while mounted, publishes it to the delivery cell.
func (a *admin) onInvalidate() {
	a.mu.Lock()
	a.pending = NewVersion()
	pending := a.pending
	mounted := a.mounted
	static := a.static
	a.mu.Unlock()

	a.metrics.incInvalidations()

	if !mounted {
		return
	}
	if static {
		a.log.Info("update triggered during static rendering; dropping delivery", "component", a.name)
		return
	}
	a.cell.Set(pending)
}

// dispose tears down the reaction if one exists. Idempotent; safe on a
// record that never created one.
func (a *admin) dispose() {
	a.mu.Lock()
	r := a.reaction
	a.reaction = nil
	a.mounted = false
	a.mu.Unlock()

	if r != nil {
		r.Dispose()
		a.metrics.incDisposals()
	}
}

// markerSet is a small identity-keyed membership set. Entries are non-owning
// and single-use: consume removes the first entry identical to the probe.
type markerSet struct {
	entries []any
}

func (m *markerSet) add(v any) {
	m.entries = append(m.entries, v)
}

func (m *markerSet) consume(v any) bool {
	for i, e := range m.entries {
		if identical(e, v) {
			m.entries[i] = m.entries[len(m.entries)-1]
			m.entries[len(m.entries)-1] = nil
			m.entries = m.entries[:len(m.entries)-1]
			return true
		}
	}
	return false
}

func (m *markerSet) reset() {
	for i := range m.entries {
		m.entries[i] = nil
	}
	m.entries = m.entries[:0]
}

func (m *markerSet) len() int {
	return len(m.entries)
}
