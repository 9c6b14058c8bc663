package tensor

import (
	"sort"
	"sync"

	"github.com/vanlore/qcircuit/span"
)

// Edge is a directed edge u -> v carrying the span of lanes shared
// between u and v (spec.md §3). Weight is never empty for an edge
// actually stored in a Network.
type Edge struct {
	From, To int
	Weight   span.Span
}

// Network is a directed graph over Nodes, keyed by a stable
// monotonically-increasing id rather than pointer identity, so that
// contraction order stays deterministic across runs (spec.md §9). It
// guards its maps with a sync.RWMutex, matching lvlath's graph.core.Graph, since
// network construction and contraction may run alongside diagnostic
// reads from a driver.
type Network struct {
	mu     sync.RWMutex
	nextID int
	nodes  map[int]*Node
	out    map[int][]Edge
	in     map[int][]Edge
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[int]*Node),
		out:   make(map[int][]Edge),
		in:    make(map[int][]Edge),
	}
}

// NextID reserves and returns the next node id.
func (net *Network) NextID() int {
	net.mu.Lock()
	defer net.mu.Unlock()
	id := net.nextID
	net.nextID++
	return id
}

// AddNode registers n. Callers obtain n.ID from NextID beforehand.
func (net *Network) AddNode(n *Node) {
	net.mu.Lock()
	defer net.mu.Unlock()
	net.nodes[n.ID] = n
	if n.ID >= net.nextID {
		net.nextID = n.ID + 1
	}
}

// AddEdge records a directed edge from -> to with the given weight.
// AddEdge does not validate that from/to were previously added via
// AddNode, matching graph.core.Graph's trust of caller-supplied
// endpoints; the builder and contractor are the only callers and both
// always add nodes first.
func (net *Network) AddEdge(from, to int, weight span.Span) {
	net.mu.Lock()
	defer net.mu.Unlock()
	e := Edge{From: from, To: to, Weight: weight}
	net.out[from] = append(net.out[from], e)
	net.in[to] = append(net.in[to], e)
}

// Node returns the node stored under id, if any.
func (net *Network) Node(id int) (*Node, bool) {
	net.mu.RLock()
	defer net.mu.RUnlock()
	n, ok := net.nodes[id]
	return n, ok
}

// Nodes returns every node currently in the network, sorted by id.
func (net *Network) Nodes() []*Node {
	net.mu.RLock()
	defer net.mu.RUnlock()
	out := make([]*Node, 0, len(net.nodes))
	for _, n := range net.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeCount returns the number of nodes currently in the network.
func (net *Network) NodeCount() int {
	net.mu.RLock()
	defer net.mu.RUnlock()
	return len(net.nodes)
}

// OutEdges returns the edges leaving id, sorted by target id.
func (net *Network) OutEdges(id int) []Edge {
	net.mu.RLock()
	defer net.mu.RUnlock()
	return sortedCopy(net.out[id], func(e Edge) int { return e.To })
}

// InEdges returns the edges entering id, sorted by source id.
func (net *Network) InEdges(id int) []Edge {
	net.mu.RLock()
	defer net.mu.RUnlock()
	return sortedCopy(net.in[id], func(e Edge) int { return e.From })
}

// Edges returns every edge in the network, sorted by (From, To).
func (net *Network) Edges() []Edge {
	net.mu.RLock()
	defer net.mu.RUnlock()
	out := make([]Edge, 0)
	for _, es := range net.out {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// RemoveNode deletes id and every edge touching it.
func (net *Network) RemoveNode(id int) {
	net.mu.Lock()
	defer net.mu.Unlock()
	delete(net.nodes, id)
	for _, e := range net.out[id] {
		net.in[e.To] = removeEdgeFrom(net.in[e.To], id)
	}
	for _, e := range net.in[id] {
		net.out[e.From] = removeEdgeTo(net.out[e.From], id)
	}
	delete(net.out, id)
	delete(net.in, id)
}

func removeEdgeFrom(edges []Edge, from int) []Edge {
	out := edges[:0:0]
	for _, e := range edges {
		if e.From != from {
			out = append(out, e)
		}
	}
	return out
}

func removeEdgeTo(edges []Edge, to int) []Edge {
	out := edges[:0:0]
	for _, e := range edges {
		if e.To != to {
			out = append(out, e)
		}
	}
	return out
}

func sortedCopy(edges []Edge, key func(Edge) int) []Edge {
	out := append([]Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
