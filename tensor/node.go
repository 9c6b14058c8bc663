package tensor

import (
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/span"
)

// Node is a tensor-network node: either a leaf wrapping a single gate, or
// an inner node recording the contraction of two children. Exactly one
// of Gate or (Left, Right) is set.
type Node struct {
	ID   int
	Gate *gate.Gate

	Left, Right *Node

	// Span is the node's combined span: the gate's span at a leaf, or
	// union(Left.Span, Right.Span) at an inner node.
	Span span.Span
}

// IsLeaf reports whether n wraps a single gate rather than a
// contraction of two children.
func (n *Node) IsLeaf() bool { return n.Gate != nil }

// Rank returns len(filled(n.Span)): the qubit width of the dense matrix
// that would materialise this subtree.
func (n *Node) Rank() int { return n.Span.Filled().Len() }

// newLeaf wraps g as a leaf node with the given id.
func newLeaf(id int, g gate.Gate) *Node {
	stored := g
	return &Node{ID: id, Gate: &stored, Span: g.Span()}
}

// NewInner wraps the contraction of left and right as a node with the
// given id; its span is union(left.Span, right.Span) per spec.md §3.
// Exported for the contract package, which creates inner nodes as it
// fuses edges.
func NewInner(id int, left, right *Node) *Node {
	return &Node{ID: id, Left: left, Right: right, Span: span.Union(left.Span, right.Span)}
}
