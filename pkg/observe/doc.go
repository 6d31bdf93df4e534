// Package observe binds a stateful component to the reactive engine so the
// component re-renders exactly when observable state it read during its last
// render changes, and never otherwise.
//
// Observe wraps a Component and returns an Observed handle the host drives
// through the usual lifecycle: Render, Mount, ShouldUpdate, Unmount. Renders
// execute inside a tracked reaction; any reactive.Signal, reactive.Computed,
// or input read during the render becomes a dependency. When a dependency
// changes, the handle's delivery Cell publishes a fresh version token and the
// host's subscribed listener re-invokes the component.
//
//	type Greeting struct{ Name *reactive.Signal[string] }
//
//	func (g *Greeting) Render() (any, error) {
//	    return "hello, " + g.Name.Get(), nil
//	}
//
//	o, err := observe.Observe(&Greeting{Name: name})
//	...
//	out, err := o.Render()
//	o.Mount()
//
// Inputs (props, state, context) flow through the handle's observable input
// bridge: SetProps, SetState, and SetContext classify each write against the
// cached value so the synchronizer's own write-backs never masquerade as
// external changes. A host that calls ShouldUpdate with a proposed value must
// commit that same value (same object identity) with the matching setter, or
// not commit it at all.
//
// Version tokens are opaque and compared only for equality: the instance is
// stale exactly when the pending token differs from the committed one.
package observe
