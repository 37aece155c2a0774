// Package search finds minimum-weight paths in a [graph.Graph].
//
// [ShortestPath] enumerates simple paths exhaustively instead of relaxing
// distances through a priority queue, so it stays correct when edge weights
// are negative. The trade-off is exponential worst-case cost in the number
// of simple paths, which suits the small, hand-declared graphs this module
// targets.
package search

import (
	"fmt"
	"slices"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// Result holds the outcome of a [ShortestPath] run.
type Result[V comparable] struct {
	// Path is the minimum-weight simple path from start to target,
	// inclusive of both. It is nil when the target is unreachable.
	Path []V

	// Weight is the total weight along Path. It is 0 when Path is nil.
	Weight float64

	// Dist maps each vertex to the smallest accumulated weight observed on
	// any explored path reaching it. It is a trace of the search, not a
	// verified distance table: branches cut off at the target are never
	// walked, so entries may exceed the true minimum. Do not treat these
	// values as authoritative shortest distances.
	Dist map[V]float64
}

// frame tracks one vertex on the current path and the neighbor index the
// search resumes from after backtracking.
type frame[V comparable] struct {
	vertex V
	next   int
	weight float64
}

// ShortestPath returns the minimum-total-weight simple path between the two
// vertices, searching neighbors in adjacency order. Of several equal-weight
// minima it keeps the first one found; a later candidate replaces the best
// only when strictly lighter. It fails with [graph.ErrUnknownVertex] when
// either endpoint is not part of g.
func ShortestPath[V comparable](g *graph.Graph[V], from, to V) (*Result[V], error) {
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("search: shortest path from %v: %w", from, graph.ErrUnknownVertex)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("search: shortest path to %v: %w", to, graph.ErrUnknownVertex)
	}

	res := &Result[V]{Dist: make(map[V]float64, g.VertexCount())}
	res.Dist[from] = 0

	if from == to {
		res.Path = []V{from}
		return res, nil
	}

	// The recursion is flattened onto an explicit stack so deep graphs
	// cannot exhaust the call stack. Each frame resumes at the neighbor it
	// stopped on when the branch below it was done.
	stack := []frame[V]{{vertex: from}}
	onPath := map[V]bool{from: true}
	path := []V{from}
	found := false

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := g.Adjacent(top.vertex)

		if top.next >= len(neighbors) {
			stack = stack[:len(stack)-1]
			delete(onPath, top.vertex)
			path = path[:len(path)-1]
			continue
		}

		n := neighbors[top.next]
		top.next++
		if onPath[n] {
			continue
		}

		w, _ := g.Weight(top.vertex, n)
		d := top.weight + w
		if old, ok := res.Dist[n]; !ok || d < old {
			res.Dist[n] = d
		}

		if n == to {
			if !found || d < res.Weight {
				res.Path = append(slices.Clone(path), n)
				res.Weight = d
				found = true
			}
			continue
		}

		stack = append(stack, frame[V]{vertex: n, weight: d})
		onPath[n] = true
		path = append(path, n)
	}

	return res, nil
}
