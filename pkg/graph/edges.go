package graph

import (
	"cmp"
	"slices"
)

// Edges returns the canonical edge list.
//
// For directed graphs this is every stored ordered pair, in declaration
// order. For undirected graphs each unordered pair appears exactly once,
// keyed by whichever direction was declared first; the generated reciprocal
// (and any repeated declaration of the same ordered pair) is skipped.
// The returned slice is a copy and may be modified freely.
func (g *Graph[V]) Edges() []Edge[V] { return slices.Clone(g.canonical) }

// EdgeCount returns the number of canonical edges, i.e. len(g.Edges()).
func (g *Graph[V]) EdgeCount() int { return len(g.canonical) }

// OrderedEdges returns the canonical edges sorted by ascending weight.
// The sort is stable: equal weights keep their [Graph.Edges] relative order,
// which is what makes spanning-tree tie-breaking reproducible.
// The returned slice is a copy and may be modified freely.
func (g *Graph[V]) OrderedEdges() []Edge[V] {
	edges := slices.Clone(g.canonical)
	slices.SortStableFunc(edges, func(a, b Edge[V]) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return edges
}

// buildCanonical derives the canonical enumeration from the combined edge
// list. It walks the list in declaration order, emitting the first
// occurrence of every ordered pair and, on undirected graphs, skipping pairs
// whose reverse was already emitted. Weights are read back from the weight
// map so a repeated declaration contributes its final weight at its first
// position.
func (g *Graph[V]) buildCanonical() []Edge[V] {
	seen := make(map[endpoints[V]]struct{}, len(g.edgeList))
	canon := make([]Edge[V], 0, len(g.edgeList))
	for _, e := range g.edgeList {
		key := endpoints[V]{e.From, e.To}
		if _, dup := seen[key]; dup {
			continue
		}
		if !g.directed {
			if _, rev := seen[endpoints[V]{e.To, e.From}]; rev {
				continue
			}
		}
		seen[key] = struct{}{}
		canon = append(canon, Edge[V]{From: e.From, To: e.To, Weight: g.weights[key]})
	}
	return canon
}
