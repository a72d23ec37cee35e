package digraph

import (
	"errors"
	"maps"
	"slices"
)

// ErrUnknownNode is returned by [Graph.Degree] when the node does not exist.
var ErrUnknownNode = errors.New("unknown node")

// Edge is a directed connection from one node to another.
type Edge struct {
	From int64
	To   int64
}

// Graph is a simple directed graph keyed by int64 node IDs.
//
// The zero value is not usable - use New to create a valid Graph instance.
type Graph struct {
	outgoing map[int64]map[int64]struct{} // nodeID -> target set
	incoming map[int64]map[int64]struct{} // nodeID -> source set
	edges    int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		outgoing: make(map[int64]map[int64]struct{}),
		incoming: make(map[int64]map[int64]struct{}),
	}
}

// AddNode adds a node with no edges. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int64) {
	if _, ok := g.outgoing[id]; ok {
		return
	}
	g.outgoing[id] = make(map[int64]struct{})
	g.incoming[id] = make(map[int64]struct{})
}

// AddEdge adds the directed edge from→to, creating either endpoint if needed.
// It reports whether the edge was new; a duplicate edge leaves the graph
// unchanged and returns false.
func (g *Graph) AddEdge(from, to int64) bool {
	g.AddNode(from)
	g.AddNode(to)
	if _, dup := g.outgoing[from][to]; dup {
		return false
	}
	g.outgoing[from][to] = struct{}{}
	g.incoming[to][from] = struct{}{}
	g.edges++
	return true
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.outgoing[id]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to int64) bool {
	_, ok := g.outgoing[from][to]
	return ok
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []int64 {
	return slices.Sorted(maps.Keys(g.outgoing))
}

// Edges returns all edges ordered by source, then target.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for _, from := range g.Nodes() {
		for _, to := range g.Successors(from) {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.outgoing) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int { return g.edges }

// Successors returns the targets of the node's outgoing edges in ascending order.
// Returns an empty slice if the node has none or doesn't exist.
func (g *Graph) Successors(id int64) []int64 {
	return slices.Sorted(maps.Keys(g.outgoing[id]))
}

// Predecessors returns the sources of the node's incoming edges in ascending order.
// Returns an empty slice if the node has none or doesn't exist.
func (g *Graph) Predecessors(id int64) []int64 {
	return slices.Sorted(maps.Keys(g.incoming[id]))
}

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) OutDegree(id int64) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) InDegree(id int64) int { return len(g.incoming[id]) }

// Degree returns the node's in- and out-degree, or ErrUnknownNode.
func (g *Graph) Degree(id int64) (in, out int, err error) {
	if !g.HasNode(id) {
		return 0, 0, ErrUnknownNode
	}
	return len(g.incoming[id]), len(g.outgoing[id]), nil
}

// Sources returns nodes with no incoming edges, in ascending order.
func (g *Graph) Sources() []int64 {
	var sources []int64
	for _, id := range g.Nodes() {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, id)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in ascending order.
func (g *Graph) Sinks() []int64 {
	var sinks []int64
	for _, id := range g.Nodes() {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}
