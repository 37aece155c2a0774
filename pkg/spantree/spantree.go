// Package spantree builds minimum spanning forests over undirected graphs.
//
// [Minimum] implements the classic edge-sorted construction: edges are
// considered in ascending weight order and selected whenever they join two
// previously separate components. On a connected graph the selection forms
// a single spanning tree; on a disconnected graph each component gets its
// own tree and the result is a spanning forest.
package spantree

import (
	"fmt"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// Result holds the outcome of a [Minimum] run.
type Result[V comparable] struct {
	// Tree is a new undirected graph over the full vertex set of the
	// input, containing exactly the selected edges.
	Tree *graph.Graph[V]

	// Edges lists the selected edges in selection order.
	Edges []graph.Edge[V]

	// Weight is the total weight of the selected edges.
	Weight float64
}

// Minimum returns the minimum spanning forest of g. Every edge of the
// sorted list is considered, so disconnected inputs come out as one tree
// per component rather than an error.
//
// The input must be undirected: the construction assumes symmetric
// connectivity and performs no check, so calling it on a directed graph
// yields an unspecified result rather than an error.
func Minimum[V comparable](g *graph.Graph[V]) (*Result[V], error) {
	res := &Result[V]{}
	sets := newDisjointSets(g.Vertices())

	for _, e := range g.OrderedEdges() {
		if !sets.union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
	}

	tree, err := graph.New(g.Vertices(), res.Edges, false)
	if err != nil {
		return nil, fmt.Errorf("spantree: build result graph: %w", err)
	}
	res.Tree = tree
	return res, nil
}
