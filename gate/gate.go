package gate

import (
	"fmt"
	"sort"

	"github.com/vanlore/qcircuit/span"
	"gonum.org/v1/gonum/mat"
)

// Gate bundles a gate kind, its parameters, and the lanes it acts upon.
// Lanes is semantic: for a controlled kind, Lanes[0] is the control (or,
// for Toffoli, Lanes[0] and Lanes[1] are the two controls); for Fredkin,
// Lanes[0] is the control and Lanes[1:] are the two targets. A Gate is a
// plain value — copy it freely.
type Gate struct {
	Kind   Kind
	Theta  float64
	Phi    float64
	Lambda float64
	Gamma  float64
	Lanes  []int

	// CustomMatrix and CustomRank are only meaningful when Kind ==
	// Custom; see NewCustom.
	CustomMatrix *mat.CDense
	CustomRank   int
}

// NewCustom builds a Custom-kind Gate from an explicit dense matrix,
// already expressed in the basis order of the ascending sort of lanes.
// Used by circuit.Adjoint, whose conjugate-transposed gates do not
// always correspond to a named catalog entry.
func NewCustom(matrix *mat.CDense, lanes []int) Gate {
	sorted := append([]int(nil), lanes...)
	sort.Ints(sorted)
	return Gate{
		Kind:         Custom,
		Lanes:        sorted,
		CustomMatrix: matrix,
		CustomRank:   len(lanes),
	}
}

// New validates lanes against kind's arity and returns a Gate. Parameters
// unused by kind are ignored by Matrix but still stored, matching the
// spec's description of a gate as "an enumeration of concrete gate
// variants, each bundling its parameters".
func New(kind Kind, lanes []int, params ...float64) (Gate, error) {
	if len(lanes) != kind.Rank() {
		return Gate{}, fmt.Errorf("%s: want %d lanes, got %d: %w", kind, kind.Rank(), len(lanes), ErrWrongLaneCount)
	}
	seen := make(map[int]struct{}, len(lanes))
	for _, l := range lanes {
		if _, dup := seen[l]; dup {
			return Gate{}, fmt.Errorf("%s: lane %d: %w", kind, l, ErrDuplicateLane)
		}
		seen[l] = struct{}{}
	}
	g := Gate{Kind: kind, Lanes: append([]int(nil), lanes...)}
	if len(params) > 0 {
		g.Theta = params[0]
	}
	if len(params) > 1 {
		g.Phi = params[1]
	}
	if len(params) > 2 {
		g.Lambda = params[2]
	}
	if len(params) > 3 {
		g.Gamma = params[3]
	}
	return g, nil
}

// Rank returns the gate's rank (1, 2, or 3).
func (g Gate) Rank() int {
	if g.Kind == Custom {
		return g.CustomRank
	}
	return g.Kind.Rank()
}

// Span returns the sparse span of lanes g acts upon, in canonical
// ascending order (independent of the semantic order in g.Lanes).
func (g Gate) Span() span.Span {
	sorted := append([]int(nil), g.Lanes...)
	sort.Ints(sorted)
	s, err := span.New(sorted...)
	if err != nil {
		// g.Lanes was already validated distinct by New; this would be
		// an internal invariant violation, not a user-facing error.
		panic(err)
	}
	return s
}

// Matrix returns the dense 2^rank x 2^rank complex matrix for g,
// expressed in the basis order of g.Span() (ascending lane index = most
// significant bit), regardless of the semantic control/target order
// g.Lanes declares.
func (g Gate) Matrix() *mat.CDense {
	canonical := g.canonicalMatrix()
	return permuteToSortedLanes(canonical, g.Lanes)
}

// canonicalMatrix returns the gate's matrix in the basis order implied
// directly by g.Lanes (Lanes[0] is the most significant bit).
func (g Gate) canonicalMatrix() *mat.CDense {
	switch g.Kind {
	case Custom:
		return g.CustomMatrix
	case Identity:
		return identity(1)
	case PauliX:
		return pauliX()
	case PauliY:
		return pauliY()
	case PauliZ:
		return pauliZ()
	case Hadamard:
		return hadamard()
	case Phase:
		return phase(g.Theta)
	case S:
		return phase(halfPi)
	case T:
		return phase(quarterPi)
	case Sdg:
		return phase(-halfPi)
	case Tdg:
		return phase(-quarterPi)
	case SX:
		return sqrtX()
	case RX:
		return rx(g.Theta)
	case RY:
		return ry(g.Theta)
	case RZ:
		return rz(g.Theta)
	case U1:
		return u(0, 0, g.Lambda)
	case U2:
		return u(halfPi, g.Phi, g.Lambda)
	case U3:
		return u(g.Theta, g.Phi, g.Lambda)
	case U:
		return u(g.Theta, g.Phi, g.Lambda)

	case CX:
		return controlled1(pauliX())
	case CY:
		return controlled1(pauliY())
	case CZ:
		return controlled1(pauliZ())
	case CP:
		return controlled1(phase(g.Theta))
	case CRX:
		return controlled1(rx(g.Theta))
	case CRY:
		return controlled1(ry(g.Theta))
	case CRZ:
		return controlled1(rz(g.Theta))
	case CH:
		return controlled1(hadamard())
	case SWAP:
		return swap()
	case CU:
		return controlledPhased(u(g.Theta, g.Phi, g.Lambda), g.Gamma)

	case Toffoli:
		return toffoli()
	case Fredkin:
		return fredkin()
	default:
		panic(ErrUnknownKind)
	}
}
