// Package rank derives per-node degree pairs and the two degree-based rankings.
//
//   - Copeland score: out-degree minus in-degree. Integer valued, may be negative.
//   - Degree ratio: (out + 1) / (in + 1). Always strictly positive; the +1 on
//     both sides keeps it defined for nodes with no incoming edges.
//
// All functions are pure: they read a [digraph.Graph] or a [Degrees] map and
// return fresh maps.
package rank
