package graph_test

import (
	"fmt"

	"github.com/matzehuels/pathspan/pkg/graph"
)

func ExampleNew() {
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
		fmt.Println("build:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("directed:", g.Directed())
	// Output:
	// vertices: 3
	// edges: 3
	// directed: false
}

func ExampleGraph_Neighbors() {
	g, _ := graph.New(
		[]string{"a", "b", "c"},
		[]graph.Edge[string]{
			{From: "a", To: "b", Weight: 3},
			{From: "b", To: "c", Weight: 5},
			{From: "c", To: "a", Weight: 7},
		},
		false,
	)

	neighbors, _ := g.Neighbors("a")
	fmt.Println(neighbors)
	// Output:
	// [b c]
}

func ExampleGraph_OrderedEdges() {
	g, _ := graph.New(
		[]string{"a", "b", "c"},
		[]graph.Edge[string]{
			{From: "a", To: "b", Weight: 3},
			{From: "b", To: "c", Weight: 5},
			{From: "c", To: "a", Weight: 7},
		},
		false,
	)

	for _, e := range g.OrderedEdges() {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// a-b 3
	// b-c 5
	// c-a 7
}
