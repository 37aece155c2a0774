package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateVertex is returned by [New] when the same label appears
	// twice in the declared vertex set. Vertex labels must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrInvalidVertex is returned by [New] when an edge references a label
	// that is absent from the declared vertex set.
	ErrInvalidVertex = errors.New("edge references undeclared vertex")

	// ErrUnknownVertex is returned by query methods (and by the query
	// packages) when a requested vertex is not part of the graph.
	ErrUnknownVertex = errors.New("unknown vertex")
)

// Edge is a weighted connection between two vertices. For undirected graphs
// an Edge passed to [New] declares both directions at once; the reciprocal
// is generated automatically.
type Edge[V comparable] struct {
	From   V       // source vertex label
	To     V       // target vertex label
	Weight float64 // edge weight, may be negative
}

// endpoints keys the weight map by an ordered (from, to) pair.
type endpoints[V comparable] struct{ from, to V }

// Graph is an immutable weighted graph over comparable vertex labels.
//
// A Graph is fully built and validated by [New] and never changes
// afterwards, which makes concurrent read-only use safe without locking.
// The zero value is not usable.
type Graph[V comparable] struct {
	directed bool

	vertices []V                 // declaration order, drives stable iteration
	index    map[V]struct{}      // membership checks
	weights  map[endpoints[V]]float64
	adjacent map[V][]V           // successor lists in edge declaration order

	// edgeList holds the combined declaration order: declared edges first,
	// generated reciprocals (undirected graphs only) appended after all of
	// them. canonical is derived from it once at construction.
	edgeList  []Edge[V]
	canonical []Edge[V]
}

// New builds a Graph from a declared vertex set and a list of edge triplets.
//
// For undirected graphs (directed = false) every edge (a,b,w) is expanded to
// also include (b,a,w) before validation and indexing; the reciprocals are
// appended after all declared edges so that neighbor order stays faithful to
// the declaration order.
//
// New returns ErrDuplicateVertex if a label is declared twice, and
// ErrInvalidVertex if any edge endpoint is missing from the vertex set. Both
// are wrapped with the offending label and match with errors.Is. On error no
// partially built graph is returned.
//
// Declaring the same ordered pair twice keeps the first declaration's
// position but the last declaration's weight, mirroring map assignment.
func New[V comparable](vertices []V, edges []Edge[V], directed bool) (*Graph[V], error) {
	g := &Graph[V]{
		directed: directed,
		vertices: slices.Clone(vertices),
		index:    make(map[V]struct{}, len(vertices)),
		weights:  make(map[endpoints[V]]float64, len(edges)),
		adjacent: make(map[V][]V, len(vertices)),
	}

	for _, v := range g.vertices {
		if _, dup := g.index[v]; dup {
			return nil, fmt.Errorf("graph: vertex %v declared twice: %w", v, ErrDuplicateVertex)
		}
		g.index[v] = struct{}{}
	}

	g.edgeList = slices.Clone(edges)
	if !directed {
		for _, e := range edges {
			g.edgeList = append(g.edgeList, Edge[V]{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	for _, e := range g.edgeList {
		if _, ok := g.index[e.From]; !ok {
			return nil, fmt.Errorf("graph: edge endpoint %v: %w", e.From, ErrInvalidVertex)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, fmt.Errorf("graph: edge endpoint %v: %w", e.To, ErrInvalidVertex)
		}
		g.weights[endpoints[V]{e.From, e.To}] = e.Weight
		g.adjacent[e.From] = append(g.adjacent[e.From], e.To)
	}

	g.canonical = g.buildCanonical()
	return g, nil
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph[V]) Directed() bool { return g.directed }

// Vertices returns all vertex labels in declaration order.
// The returned slice is a copy and may be modified freely.
func (g *Graph[V]) Vertices() []V { return slices.Clone(g.vertices) }

// VertexCount returns the number of declared vertices.
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// HasVertex reports whether v is part of the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// Neighbors returns the immediate successors of v in edge declaration order,
// reciprocals of an undirected graph included after the declared edges.
// Returns ErrUnknownVertex if v is not part of the graph.
// The returned slice is a copy and may be modified freely.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("graph: neighbors of %v: %w", v, ErrUnknownVertex)
	}
	return slices.Clone(g.adjacent[v]), nil
}

// Adjacent returns the successor list of v without copying. It returns nil
// when v has no successors or is not part of the graph; use [Graph.Neighbors]
// when unknown vertices must be distinguished. The returned slice is a
// read-only view - do not modify it.
func (g *Graph[V]) Adjacent(v V) []V { return g.adjacent[v] }

// Weight returns the weight of the ordered pair (u,v) and whether such an
// edge exists. On undirected graphs both orientations resolve to the same
// weight.
func (g *Graph[V]) Weight(u, v V) (float64, bool) {
	w, ok := g.weights[endpoints[V]{u, v}]
	return w, ok
}
