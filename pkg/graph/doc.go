// Package graph provides an immutable weighted graph over caller-supplied
// vertex labels, the data structure every pathspan query operates on.
//
// # Overview
//
// A [Graph] is built once from a vertex set and a list of weighted edge
// triplets, validated synchronously, and never mutated afterwards. Queries
// (shortest path, spanning forests, traversals, DOT emission) live in the
// sibling packages and only ever read the graph, so any number of them can
// run concurrently against the same instance without locking.
//
// Vertex labels are a type parameter constrained to comparable: strings,
// integers and runes all work, and the engine treats them as opaque values.
//
// # Basic Usage
//
// Create a graph with [New], passing the declared vertices, the edge
// triplets, and the directedness flag:
//
//	g, err := graph.New(
//		[]string{"a", "b", "c"},
//		[]graph.Edge[string]{
//			{From: "a", To: "b", Weight: 3},
//			{From: "b", To: "c", Weight: 5},
//			{From: "c", To: "a", Weight: 7},
//		},
//		false,
//	)
//
// For undirected graphs every declared edge (a,b,w) also produces the
// reciprocal (b,a,w): both directions resolve through [Graph.Weight], and
// both endpoints list each other in [Graph.Neighbors].
//
// # Ordering Guarantees
//
// Iteration order is deliberately pinned down, because the query packages
// break ties by it:
//
//   - [Graph.Vertices] returns labels in declaration order.
//   - [Graph.Neighbors] returns successors in edge declaration order, with
//     the reciprocals of an undirected graph appended after all declared
//     edges.
//   - [Graph.Edges] enumerates each canonical edge once, keyed by whichever
//     direction was declared first.
//   - [Graph.OrderedEdges] sorts canonically by ascending weight and keeps
//     the [Graph.Edges] order for equal weights.
//
// # Weights
//
// Weights are float64 and may be negative. Nothing in this package or the
// query packages assumes positivity; see the search package for why that
// matters.
//
// # Related Packages
//
// The [traverse], [search], [spantree] and [dot] packages implement the
// queries; [graphio] reads and writes graph definition files.
//
// [traverse]: github.com/matzehuels/pathspan/pkg/traverse
// [search]: github.com/matzehuels/pathspan/pkg/search
// [spantree]: github.com/matzehuels/pathspan/pkg/spantree
// [dot]: github.com/matzehuels/pathspan/pkg/dot
// [graphio]: github.com/matzehuels/pathspan/pkg/graphio
package graph
