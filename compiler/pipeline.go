package compiler

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/contract"
	"github.com/vanlore/qcircuit/exec"
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/lower"
	"github.com/vanlore/qcircuit/schedule"
	"github.com/vanlore/qcircuit/span"
	"github.com/vanlore/qcircuit/tensor"
)

// Options configures a Pipeline. Following the flow.FlowOptions idiom,
// it is a small exported struct with a normalize() filling defaults.
type Options struct {
	Logger *zerolog.Logger
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Pipeline compiles circuits with a fixed logging configuration. A
// Pipeline has no other state and is safe to reuse across Compile calls.
type Pipeline struct {
	log *zerolog.Logger
}

// New returns a Pipeline configured by opts.
func New(opts Options) *Pipeline {
	opts = opts.normalize()
	return &Pipeline{log: opts.Logger}
}

// Contraction is one connected component of the tensor network after
// contraction. A forest with more than one Contraction arises whenever
// some lanes never interact with others (spec.md §2's "independent
// contractions"). Plan is nil when Root is a bare leaf: a single gate
// that never fused with anything has nothing to schedule, and its own
// matrix is used directly as the contraction's block.
type Contraction struct {
	Root *tensor.Node
	Plan *schedule.Plan
}

// Compilation is the result of compiling one circuit: every independent
// contraction, each with its own instruction plan ready to execute or
// emit.
type Compilation struct {
	RunID        uuid.UUID
	Lanes        int
	Network      *tensor.Network
	Contractions []Contraction
}

// Compile builds c's tensor network, contracts it into a forest, and
// lowers+schedules every non-trivial root. It never fails: every stage
// it drives (tensor.Build, contract.Contract, lower.Lower, schedule.Build)
// is itself total over a well-formed Circuit, and Circuit construction
// is where validation already happened (spec.md §4.2/§7).
func (p *Pipeline) Compile(c *circuit.Circuit) *Compilation {
	runID := uuid.New()
	log := p.log.With().Str("run_id", runID.String()).Logger()

	net := tensor.Build(c)
	log.Debug().Int("nodes", net.NodeCount()).Msg("compiler: tensor network built")

	roots := contract.Contract(net)
	log.Debug().Int("roots", len(roots)).Msg("compiler: contraction forest complete")

	contractions := make([]Contraction, len(roots))
	for i, root := range roots {
		entry := Contraction{Root: root}
		if !root.IsLeaf() {
			op := lower.Lower(root)
			entry.Plan = schedule.Build(op, schedule.Options{Logger: &log})
			log.Debug().
				Int("root", root.ID).
				Int("depth", operationDepth(op)).
				Int("instructions", entry.Plan.Len()).
				Msg("compiler: operation tree lowered and scheduled")
		}
		contractions[i] = entry
	}

	return &Compilation{RunID: runID, Lanes: c.Lanes(), Network: net, Contractions: contractions}
}

// Execute drives every contraction's plan to completion on a fresh
// in-memory CPU backend and composes the surviving blocks into a single
// operator over comp.Lanes lanes. Independent contractions touch
// disjoint lanes by construction (tensor.Build only links nodes that
// share a lane), so each contraction's block is embedded onto the full
// lane range and the embedded operators are multiplied together in any
// order — spec.md §2's "final product is a Kronecker composition",
// expressed here as ordinary matrix multiplication of commuting
// full-width operators rather than as a literal Kronecker product,
// since gate.Embed already produces same-width operands.
func (p *Pipeline) Execute(ctx context.Context, comp *Compilation) (*mat.CDense, error) {
	dim := 1 << comp.Lanes
	total := identity(dim)
	full := fullSpan(comp.Lanes)

	for _, c := range comp.Contractions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		block, lanes, err := resolveContraction(ctx, c)
		if err != nil {
			return nil, err
		}
		embedded := gate.Embed(block, lanes, full)
		next := mat.NewCDense(dim, dim, nil)
		next.Mul(embedded, total)
		total = next
	}
	return total, nil
}

func resolveContraction(ctx context.Context, c Contraction) (*mat.CDense, []int, error) {
	if c.Root.IsLeaf() {
		return c.Root.Gate.Matrix(), append([]int(nil), c.Root.Gate.Lanes...), nil
	}

	backend := exec.NewCPU()
	if err := exec.Run(ctx, c.Plan, backend); err != nil {
		return nil, nil, err
	}
	drained := backend.Drain()
	block := drained[maxID(drained)]
	lanes := append([]int(nil), c.Root.Span.Filled()...)
	return block.CDense, lanes, nil
}

func maxID(blocks map[int]exec.Block) int {
	max := -1
	for id := range blocks {
		if id > max {
			max = id
		}
	}
	return max
}

func identity(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, complex(1, 0))
	}
	return m
}

func fullSpan(n int) span.Span {
	out := make(span.Span, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// operationDepth returns the height of op's operand tree, counting op
// itself as depth 1.
func operationDepth(op *lower.Operation) int {
	depth := 1
	if op.Left.Kind == lower.OperandOp {
		depth = max(depth, 1+operationDepth(op.Left.Op))
	}
	if op.Right.Kind == lower.OperandOp {
		depth = max(depth, 1+operationDepth(op.Right.Op))
	}
	return depth
}
