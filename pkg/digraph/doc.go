// Package digraph provides the directed graph that edge lists are loaded into.
//
// # Overview
//
// A [Graph] is a set of integer node identifiers plus a set of ordered
// (source, target) edges. It follows simple-digraph semantics: adding an edge
// that already exists is a no-op, so repeated lines in an edge list do not
// inflate degrees. Self-loops are kept and count once toward both the in- and
// out-degree of their node.
//
// # Basic Usage
//
//	g := digraph.New()
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 1)
//	g.AddEdge(3, 1)
//
//	g.InDegree(1)  // 2
//	g.OutDegree(3) // 1
//
// [Graph.AddEdge] creates missing endpoints. Use [Graph.AddNode] for nodes
// that should exist without any edges.
//
// # Concurrency
//
// Graph is not safe for concurrent use without external synchronization. Once
// loading finishes it is only read, so sharing a fully built graph between
// readers is fine.
package digraph
