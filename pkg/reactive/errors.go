package reactive

import "errors"

// ErrObservationOnly is the panic value raised when an atom is marked
// changed inside an ObservationOnly scope. Render wrappers establish such a
// scope so a render body that mutates observable state fails loudly instead
// of silently corrupting dependency tracking.
var ErrObservationOnly = errors.New("reactive: observable state mutated inside an observation-only scope")
