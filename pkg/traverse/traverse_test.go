package traverse

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// triangle builds the undirected triangle a-b-c.
func triangle(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g, err := graph.New(
		[]string{"a", "b", "c"},
		[]graph.Edge[string]{
			{From: "a", To: "b", Weight: 3},
			{From: "b", To: "c", Weight: 5},
			{From: "c", To: "a", Weight: 7},
		},
		false,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// branching builds a directed graph with a fork at a and one vertex that is
// unreachable from a.
func branching(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g, err := graph.New(
		[]string{"a", "b", "c", "d", "e"},
		[]graph.Edge[string]{
			{From: "a", To: "b", Weight: 1},
			{From: "a", To: "c", Weight: 1},
			{From: "b", To: "d", Weight: 1},
			{From: "e", To: "a", Weight: 1},
		},
		true,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestDepthFirst(t *testing.T) {
	tests := []struct {
		name           string
		graph          func(*testing.T) *graph.Graph[string]
		start          string
		wantDiscovered []string
		wantExplored   []string
		wantWalk       []string
	}{
		{
			name:           "Triangle",
			graph:          triangle,
			start:          "a",
			wantDiscovered: []string{"a", "b", "c"},
			wantExplored:   []string{"c", "b", "a"},
			wantWalk:       []string{"a", "b", "c", "b", "a"},
		},
		{
			name:           "BranchingSkipsUnreachable",
			graph:          branching,
			start:          "a",
			wantDiscovered: []string{"a", "b", "d", "c"},
			wantExplored:   []string{"d", "b", "c", "a"},
			wantWalk:       []string{"a", "b", "d", "b", "a", "c", "a"},
		},
		{
			name:           "LeafStart",
			graph:          branching,
			start:          "d",
			wantDiscovered: []string{"d"},
			wantExplored:   []string{"d"},
			wantWalk:       []string{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DepthFirst(tt.graph(t), tt.start)
			if err != nil {
				t.Fatalf("DepthFirst(%s): %v", tt.start, err)
			}
			if !slices.Equal(res.Discovered, tt.wantDiscovered) {
				t.Errorf("Discovered = %v, want %v", res.Discovered, tt.wantDiscovered)
			}
			if !slices.Equal(res.Explored, tt.wantExplored) {
				t.Errorf("Explored = %v, want %v", res.Explored, tt.wantExplored)
			}
			if !slices.Equal(res.Walk, tt.wantWalk) {
				t.Errorf("Walk = %v, want %v", res.Walk, tt.wantWalk)
			}
		})
	}
}

func TestDepthFirstWalkHasNoImmediateRepeats(t *testing.T) {
	res, err := DepthFirst(branching(t), "a")
	if err != nil {
		t.Fatalf("DepthFirst(a): %v", err)
	}
	for i := 1; i < len(res.Walk); i++ {
		if res.Walk[i] == res.Walk[i-1] {
			t.Fatalf("walk repeats %v at position %d: %v", res.Walk[i], i, res.Walk)
		}
	}
}

func TestBreadthFirst(t *testing.T) {
	tests := []struct {
		name           string
		graph          func(*testing.T) *graph.Graph[string]
		start          string
		wantDiscovered []string
		wantExplored   []string
	}{
		{
			name:           "Triangle",
			graph:          triangle,
			start:          "a",
			wantDiscovered: []string{"a", "b", "c"},
			wantExplored:   []string{"a", "b", "c"},
		},
		{
			name:           "BranchingLevelOrder",
			graph:          branching,
			start:          "a",
			wantDiscovered: []string{"a", "b", "c", "d"},
			wantExplored:   []string{"a", "b", "c", "d"},
		},
		{
			name:           "LeafStart",
			graph:          branching,
			start:          "d",
			wantDiscovered: []string{"d"},
			wantExplored:   []string{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BreadthFirst(tt.graph(t), tt.start)
			if err != nil {
				t.Fatalf("BreadthFirst(%s): %v", tt.start, err)
			}
			if !slices.Equal(res.Discovered, tt.wantDiscovered) {
				t.Errorf("Discovered = %v, want %v", res.Discovered, tt.wantDiscovered)
			}
			if !slices.Equal(res.Explored, tt.wantExplored) {
				t.Errorf("Explored = %v, want %v", res.Explored, tt.wantExplored)
			}
			if res.Walk != nil {
				t.Errorf("Walk = %v, want nil", res.Walk)
			}
		})
	}
}

func TestTraverseUnknownStart(t *testing.T) {
	g := triangle(t)

	if _, err := DepthFirst(g, "z"); !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("DepthFirst(z) error = %v, want ErrUnknownVertex", err)
	}
	if _, err := BreadthFirst(g, "z"); !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("BreadthFirst(z) error = %v, want ErrUnknownVertex", err)
	}
}

func TestTraverseVisitsReachableOnce(t *testing.T) {
	g := branching(t)

	for name, run := range map[string]func(*graph.Graph[string], string) (*Result[string], error){
		"DepthFirst":   DepthFirst[string],
		"BreadthFirst": BreadthFirst[string],
	} {
		t.Run(name, func(t *testing.T) {
			res, err := run(g, "a")
			if err != nil {
				t.Fatalf("%s(a): %v", name, err)
			}

			seen := make(map[string]int)
			for _, v := range res.Discovered {
				seen[v]++
			}
			for v, n := range seen {
				if n != 1 {
					t.Errorf("vertex %v discovered %d times", v, n)
				}
			}
			if _, ok := seen["e"]; ok {
				t.Error("unreachable vertex e was discovered")
			}
			if len(res.Explored) != len(res.Discovered) {
				t.Errorf("explored %d vertices, discovered %d", len(res.Explored), len(res.Discovered))
			}
		})
	}
}
