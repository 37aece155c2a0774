package graph

import (
	"slices"
	"testing"
)

func TestEdgesCanonical(t *testing.T) {
	tests := []struct {
		name     string
		vertices []string
		edges    []Edge[string]
		directed bool
		want     []Edge[string]
	}{
		{
			name:     "UndirectedEachPairOnce",
			vertices: []string{"a", "b", "c"},
			edges: []Edge[string]{
				{From: "a", To: "b", Weight: 3},
				{From: "b", To: "c", Weight: 5},
				{From: "c", To: "a", Weight: 7},
			},
			want: []Edge[string]{
				{From: "a", To: "b", Weight: 3},
				{From: "b", To: "c", Weight: 5},
				{From: "c", To: "a", Weight: 7},
			},
		},
		{
			name:     "DirectedKeepsBothOrientations",
			vertices: []string{"a", "b"},
			edges: []Edge[string]{
				{From: "a", To: "b", Weight: 1},
				{From: "b", To: "a", Weight: 2},
			},
			directed: true,
			want: []Edge[string]{
				{From: "a", To: "b", Weight: 1},
				{From: "b", To: "a", Weight: 2},
			},
		},
		{
			name:     "DuplicateDeclarationLastWeightFirstPosition",
			vertices: []string{"a", "b", "c"},
			edges: []Edge[string]{
				{From: "a", To: "b", Weight: 3},
				{From: "b", To: "c", Weight: 5},
				{From: "a", To: "b", Weight: 9},
			},
			want: []Edge[string]{
				{From: "a", To: "b", Weight: 9},
				{From: "b", To: "c", Weight: 5},
			},
		},
		{
			name:     "SelfLoopOnce",
			vertices: []string{"a", "b"},
			edges: []Edge[string]{
				{From: "a", To: "a", Weight: 1},
				{From: "a", To: "b", Weight: 2},
			},
			want: []Edge[string]{
				{From: "a", To: "a", Weight: 1},
				{From: "a", To: "b", Weight: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.vertices, tt.edges, tt.directed)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := g.Edges()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Edges() = %v, want %v", got, tt.want)
			}
			if g.EdgeCount() != len(tt.want) {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), len(tt.want))
			}
		})
	}
}

func TestEdgesCountMatchesDeclared(t *testing.T) {
	// An undirected graph with k distinct declared edges enumerates exactly
	// k canonical edges, reciprocals notwithstanding.
	g, err := New(
		[]string{"a", "b", "c", "d"},
		[]Edge[string]{
			{From: "a", To: "b", Weight: 1},
			{From: "b", To: "c", Weight: 2},
			{From: "c", To: "d", Weight: 3},
			{From: "d", To: "a", Weight: 4},
			{From: "a", To: "c", Weight: 5},
		},
		false,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.EdgeCount(); got != 5 {
		t.Errorf("EdgeCount() = %d, want 5", got)
	}
}

func TestOrderedEdges(t *testing.T) {
	g, err := New(
		[]string{"a", "b", "c", "d"},
		[]Edge[string]{
			{From: "a", To: "b", Weight: 4},
			{From: "b", To: "c", Weight: -1},
			{From: "c", To: "d", Weight: 4},
			{From: "d", To: "a", Weight: 0.5},
		},
		false,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := g.OrderedEdges()
	want := []Edge[string]{
		{From: "b", To: "c", Weight: -1},
		{From: "d", To: "a", Weight: 0.5},
		{From: "a", To: "b", Weight: 4},
		{From: "c", To: "d", Weight: 4},
	}
	if !slices.Equal(got, want) {
		t.Errorf("OrderedEdges() = %v, want %v", got, want)
	}
}

func TestOrderedEdgesStableOnTies(t *testing.T) {
	// All weights equal: the canonical declaration order must survive.
	g, err := New(
		[]string{"a", "b", "c", "d"},
		[]Edge[string]{
			{From: "c", To: "d", Weight: 1},
			{From: "a", To: "b", Weight: 1},
			{From: "b", To: "c", Weight: 1},
		},
		false,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := g.OrderedEdges()
	want := []Edge[string]{
		{From: "c", To: "d", Weight: 1},
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("OrderedEdges() = %v, want %v", got, want)
	}
}

func TestOrderedEdgesDoesNotMutateCanonical(t *testing.T) {
	g, err := New(
		[]string{"a", "b", "c"},
		[]Edge[string]{
			{From: "a", To: "b", Weight: 9},
			{From: "b", To: "c", Weight: 1},
		},
		false,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = g.OrderedEdges()
	got := g.Edges()
	if got[0].From != "a" || got[0].To != "b" {
		t.Errorf("Edges()[0] = %v after OrderedEdges, want a->b", got[0])
	}
}
