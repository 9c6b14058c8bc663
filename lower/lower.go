package lower

import (
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/span"
	"github.com/vanlore/qcircuit/tensor"
)

// Lower turns root, an inner tensor-network node produced by contract,
// into its Operation tree. The tree's root is never transposed (spec.md
// §4.4); root must not be a leaf — a contraction forest node that never
// fused with anything has nothing to lower and is used directly as a
// block by the caller.
func Lower(root *tensor.Node) *Operation {
	return lowerContraction(root, false)
}

// lowerContraction builds the matmul node for n's own contraction,
// propagating transposed into the left child unchanged and into the
// right child flipped, per spec.md §4.4.
func lowerContraction(n *tensor.Node, transposed bool) *Operation {
	target := n.Span.Filled()
	left := expand(n.Left, target, transposed)
	right := expand(n.Right, target, !transposed)
	return &Operation{Kind: MM, Span: target, Left: left, Right: right, Transposed: transposed}
}

// expand lowers child c and, if its filled span is narrower than
// target, wraps it in one or two tensor-expansion nodes that pad it up
// to target: a left identity pad first, then a right identity pad,
// preserving associativity (spec.md §4.4).
func expand(c *tensor.Node, target span.Span, transposed bool) Operand {
	inner := lowerOperand(c, transposed)
	cFilled := c.Span.Filled()
	if span.Equal(cFilled, target) {
		return inner
	}

	leftWidth := cFilled.Start() - target.Start()
	rightWidth := target.End() - cFilled.End()
	cur := inner
	curSpan := cFilled

	if leftWidth > 0 {
		padded := rangeSpan(target.Start(), cFilled.Start()-1)
		curSpan = span.Union(padded, curSpan)
		op := &Operation{
			Kind:       TE,
			Span:       curSpan,
			Left:       Operand{Kind: OperandIdentity, IdentityWidth: leftWidth},
			Right:      cur,
			Transposed: transposed,
		}
		cur = Operand{Kind: OperandOp, Op: op}
	}
	if rightWidth > 0 {
		padded := rangeSpan(cFilled.End()+1, target.End())
		curSpan = span.Union(curSpan, padded)
		op := &Operation{
			Kind:       TE,
			Span:       curSpan,
			Left:       cur,
			Right:      Operand{Kind: OperandIdentity, IdentityWidth: rightWidth},
			Transposed: transposed,
		}
		cur = Operand{Kind: OperandOp, Op: op}
	}
	return cur
}

// lowerOperand returns c as an Operand: a bare gate for a leaf, or a
// nested Operation for an inner contraction node.
func lowerOperand(c *tensor.Node, transposed bool) Operand {
	if c.IsLeaf() {
		return Operand{Kind: OperandGate, Gate: canonicalizeLeaf(c.Gate)}
	}
	return Operand{Kind: OperandOp, Op: lowerContraction(c, transposed)}
}

// canonicalizeLeaf returns g unchanged when its own lanes are already
// contiguous. Otherwise — a control and target with untouched lanes
// strictly between them — it returns a Custom gate whose matrix has
// those lanes' identity baked in, so the result spans g.Span().Filled()
// exactly like any other operand expand compares against. Without this,
// a gate such as CX(0,2) would pass expand's span.Equal check (its own
// filled span already matches the target) while still carrying only its
// compact 4x4 matrix, silently dropping the spectator lane.
func canonicalizeLeaf(g *gate.Gate) *gate.Gate {
	sparse := g.Span()
	filled := sparse.Filled()
	if span.Equal(sparse, filled) {
		return g
	}
	embedded := gate.Embed(g.Matrix(), g.Lanes, filled)
	custom := gate.NewCustom(embedded, filled)
	return &custom
}

func rangeSpan(lo, hi int) span.Span {
	out := make(span.Span, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		out = append(out, l)
	}
	return out
}
