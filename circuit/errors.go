package circuit

import "errors"

// ErrLaneOutOfRange is the circuit-validation error of spec §7: a gate's
// lane indices exceed the declared qubit count. Fatal to the current
// compile; reported by AddGate, not by the tensor-network builder.
var ErrLaneOutOfRange = errors.New("circuit: gate lane out of range")

// ErrZeroLanes is returned by New when asked to build a zero-lane
// circuit; spec §3 requires N >= 1.
var ErrZeroLanes = errors.New("circuit: lane count must be >= 1")
