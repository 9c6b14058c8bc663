package contract

import (
	"sort"

	"github.com/vanlore/qcircuit/span"
	"github.com/vanlore/qcircuit/tensor"
)

// candidate pairs a contractible edge with the rank fusing it would
// produce.
type candidate struct {
	edge tensor.Edge
	rank int
}

// Contract reduces net in place until no contractible edge remains and
// returns the surviving nodes, sorted by id. Contraction never fails on
// well-formed input (spec.md §4.3): a network with no contractible edge
// at entry is already in normal form and is returned unchanged.
func Contract(net *tensor.Network) []*tensor.Node {
	for {
		candidates := contractibleCandidates(net)
		if len(candidates) == 0 {
			break
		}
		round := lowestRankGroup(candidates)
		for _, e := range maximalIndependentSet(round) {
			fuse(net, e)
		}
	}
	return net.Nodes()
}

// contractibleCandidates returns every edge u -> v in net whose weight
// equals intersection(u.span, v.span) exactly, paired with the rank
// fusing that edge would produce, in the stable (From, To) order
// net.Edges() already guarantees.
func contractibleCandidates(net *tensor.Network) []candidate {
	var out []candidate
	for _, e := range net.Edges() {
		u, _ := net.Node(e.From)
		v, _ := net.Node(e.To)
		if !span.Equal(span.Intersection(u.Span, v.Span), e.Weight) {
			continue
		}
		rank := span.Union(u.Span, v.Span).Filled().Len()
		out = append(out, candidate{edge: e, rank: rank})
	}
	return out
}

// lowestRankGroup returns the subset of candidates achieving the
// minimum rank present, preserving their relative order.
func lowestRankGroup(candidates []candidate) []candidate {
	min := candidates[0].rank
	for _, c := range candidates[1:] {
		if c.rank < min {
			min = c.rank
		}
	}
	out := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.rank == min {
			out = append(out, c)
		}
	}
	return out
}

// maximalIndependentSet greedily accepts candidates, in the order
// given, whose endpoints have not yet been claimed this round. The tie
// break among equal-rank edges is exactly this order: lower-id source
// first, then lower-id target, per spec.md §9's open question on
// contraction determinism.
func maximalIndependentSet(candidates []candidate) []tensor.Edge {
	claimed := make(map[int]bool, 2*len(candidates))
	out := make([]tensor.Edge, 0, len(candidates))
	for _, c := range candidates {
		if claimed[c.edge.From] || claimed[c.edge.To] {
			continue
		}
		claimed[c.edge.From] = true
		claimed[c.edge.To] = true
		out = append(out, c.edge)
	}
	return out
}

// fuse replaces e's endpoints u, v with a single inner node spanning
// union(u.Span, v.Span), rewiring every surviving neighbour's edge to
// point at the new node. A neighbour w linked to both u and v is linked
// to the new node once, with the union of the two replaced weights.
func fuse(net *tensor.Network, e tensor.Edge) {
	u, _ := net.Node(e.From)
	v, _ := net.Node(e.To)

	back := make(map[int]span.Span)
	for _, in := range net.InEdges(u.ID) {
		if in.From == v.ID {
			continue
		}
		back[in.From] = span.Union(back[in.From], in.Weight)
	}
	for _, in := range net.InEdges(v.ID) {
		if in.From == u.ID {
			continue
		}
		back[in.From] = span.Union(back[in.From], in.Weight)
	}

	front := make(map[int]span.Span)
	for _, out := range net.OutEdges(v.ID) {
		if out.To == u.ID {
			continue
		}
		front[out.To] = span.Union(front[out.To], out.Weight)
	}
	for _, out := range net.OutEdges(u.ID) {
		if out.To == v.ID {
			continue
		}
		front[out.To] = span.Union(front[out.To], out.Weight)
	}

	newID := net.NextID()
	newNode := tensor.NewInner(newID, u, v)

	net.RemoveNode(u.ID)
	net.RemoveNode(v.ID)
	net.AddNode(newNode)

	for _, w := range sortedKeys(back) {
		net.AddEdge(w, newID, back[w])
	}
	for _, w := range sortedKeys(front) {
		net.AddEdge(newID, w, front[w])
	}
}

func sortedKeys(m map[int]span.Span) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
