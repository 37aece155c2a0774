package spantree

// disjointSets partitions vertices into connected components. Lookups use
// path compression and merges use union by rank, so both stay near constant
// time. Neither optimization changes which merges happen, only how fast the
// representatives resolve.
type disjointSets[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newDisjointSets[V comparable](vertices []V) *disjointSets[V] {
	s := &disjointSets[V]{
		parent: make(map[V]V, len(vertices)),
		rank:   make(map[V]int, len(vertices)),
	}
	for _, v := range vertices {
		s.parent[v] = v
	}
	return s
}

// find returns the representative of v's component.
func (s *disjointSets[V]) find(v V) V {
	for s.parent[v] != v {
		s.parent[v] = s.parent[s.parent[v]]
		v = s.parent[v]
	}
	return v
}

// union merges the components of u and v. It reports whether a merge
// happened; false means both already shared a component.
func (s *disjointSets[V]) union(u, v V) bool {
	ru, rv := s.find(u), s.find(v)
	if ru == rv {
		return false
	}
	if s.rank[ru] < s.rank[rv] {
		ru, rv = rv, ru
	}
	s.parent[rv] = ru
	if s.rank[ru] == s.rank[rv] {
		s.rank[ru]++
	}
	return true
}
