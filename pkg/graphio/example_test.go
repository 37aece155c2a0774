package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/pathspan/pkg/graph"
	"github.com/matzehuels/pathspan/pkg/graphio"
)

func ExampleReadJSON() {
	in := `{
	  "vertices": ["a", "b"],
	  "edges": [{"from": "a", "to": "b", "weight": 3}]
	}`

	g, _ := graphio.ReadJSON(strings.NewReader(in))
	fmt.Println(g.VertexCount(), "vertices,", g.EdgeCount(), "edges")
	// Output:
	// 2 vertices, 1 edges
}

func ExampleWriteJSON() {
	g, _ := graph.New(
		[]string{"a", "b"},
		[]graph.Edge[string]{{From: "a", To: "b", Weight: 3}},
		false,
	)

	_ = graphio.WriteJSON(g, os.Stdout)
	// Output:
	// {
	//   "vertices": [
	//     "a",
	//     "b"
	//   ],
	//   "edges": [
	//     {
	//       "from": "a",
	//       "to": "b",
	//       "weight": 3
	//     }
	//   ]
	// }
}
