// Package gate is the gate-catalog adapter: a pure mapping from
// (kind, parameters, lanes) to (rank, span, dense matrix), as described
// in spec.md §6. A Gate owns nothing external and is a plain copyable
// value.
//
// The concrete numeric matrices are pinned by the standard quantum-gate
// definitions; see catalog.go. Lane ordering within a Gate is semantic
// (the first lane of a controlled gate is its control, the last lanes of
// Fredkin are its two targets); the matrix returned by Matrix is always
// expressed in the gate's *sorted* Span, so two gates that touch the
// same lanes but declare them in a different order can still be fed to
// the rest of the compiler uniformly.
package gate
