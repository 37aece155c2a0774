// Package traverse provides order-preserving traversals over a [graph.Graph].
//
// [DepthFirst] and [BreadthFirst] visit every vertex reachable from a start
// vertex and record the order in which vertices were discovered and the
// order in which they were fully explored. Neighbor lists are followed
// exactly as the graph reports them, so repeated runs over the same graph
// always produce the same orders.
package traverse

import (
	"fmt"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// Result records the vertex orders produced by a single traversal.
type Result[V comparable] struct {
	// Discovered lists vertices in the order they were first reached.
	Discovered []V

	// Explored lists vertices in the order their full neighbor list was
	// processed. For depth-first runs this is the finish order; for
	// breadth-first runs it matches the dequeue order.
	Explored []V

	// Walk is the literal depth-first walk including backtracking moves.
	// A move is dropped when it would repeat the vertex the walk already
	// ends on. Breadth-first traversals leave it nil.
	Walk []V
}

// DepthFirst traverses g from start, following each branch to its full depth
// before turning to the next neighbor. It fails with [graph.ErrUnknownVertex]
// when start is not part of g.
func DepthFirst[V comparable](g *graph.Graph[V], start V) (*Result[V], error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("traverse: depth-first start %v: %w", start, graph.ErrUnknownVertex)
	}

	w := &dfsWalker[V]{
		graph:      g,
		discovered: make(map[V]bool, g.VertexCount()),
		res:        &Result[V]{},
	}
	w.visit(start)
	return w.res, nil
}

// dfsWalker carries the state of one depth-first run.
type dfsWalker[V comparable] struct {
	graph      *graph.Graph[V]
	discovered map[V]bool
	res        *Result[V]
}

func (w *dfsWalker[V]) visit(v V) {
	w.discovered[v] = true
	w.res.Discovered = append(w.res.Discovered, v)
	w.step(v)

	for _, n := range w.graph.Adjacent(v) {
		if w.discovered[n] {
			continue
		}
		w.visit(n)
		w.step(v) // backtracking move
	}
	w.res.Explored = append(w.res.Explored, v)
}

// step appends v to the walk unless the walk already ends on v.
func (w *dfsWalker[V]) step(v V) {
	if n := len(w.res.Walk); n > 0 && w.res.Walk[n-1] == v {
		return
	}
	w.res.Walk = append(w.res.Walk, v)
}

// BreadthFirst traverses g from start level by level. It fails with
// [graph.ErrUnknownVertex] when start is not part of g.
func BreadthFirst[V comparable](g *graph.Graph[V], start V) (*Result[V], error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("traverse: breadth-first start %v: %w", start, graph.ErrUnknownVertex)
	}

	res := &Result[V]{}
	discovered := make(map[V]bool, g.VertexCount())
	queue := make([]V, 0, g.VertexCount())

	discovered[start] = true
	res.Discovered = append(res.Discovered, start)
	queue = append(queue, start)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, n := range g.Adjacent(v) {
			if discovered[n] {
				continue
			}
			discovered[n] = true
			res.Discovered = append(res.Discovered, n)
			queue = append(queue, n)
		}
		res.Explored = append(res.Explored, v)
	}
	return res, nil
}
