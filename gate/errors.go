package gate

import "errors"

// ErrWrongLaneCount is returned when a Gate is constructed with a lane
// count that does not match its Kind's arity (spec §6).
var ErrWrongLaneCount = errors.New("gate: wrong number of lanes for kind")

// ErrDuplicateLane is returned when a Gate's Lanes contains the same
// lane index more than once.
var ErrDuplicateLane = errors.New("gate: duplicate lane index")

// ErrUnknownKind is the panic value of Kind.Rank and Gate.Matrix for a
// Kind value outside the enumerated range (Kind.String returns "?"
// instead) — an internal invariant violation, since every constructor in
// this package only ever produces valid kinds.
var ErrUnknownKind = errors.New("gate: unknown gate kind")
