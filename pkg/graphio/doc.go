// Package graphio reads and writes graph definitions as JSON or TOML.
//
// # Overview
//
// A definition lists the declared vertices, the declared edges with their
// weights, and whether the graph is directed. Decoding always passes through
// [graph.New], so a file that references an undeclared vertex or declares a
// vertex twice fails with the same errors a programmatic construction would.
// Labels are plain strings; use the [graph] package directly when other
// label types are needed.
//
// # JSON Format
//
//	{
//	  "vertices": ["a", "b", "c"],
//	  "edges": [
//	    {"from": "a", "to": "b", "weight": 3},
//	    {"from": "b", "to": "c", "weight": 5}
//	  ]
//	}
//
// The optional top-level "directed" boolean defaults to false.
//
// # TOML Format
//
//	vertices = ["a", "b", "c"]
//
//	[[edges]]
//	from = "a"
//	to = "b"
//	weight = 3.0
//
// The same optional "directed" key applies.
//
// # Loading Files
//
// [Load] reads a definition from a path and picks the codec from the file
// extension, so callers that accept user-supplied paths need no format flag:
//
//	g, err := graphio.Load("network.toml")
//
// Writers emit the canonical edge enumeration of the graph. For undirected
// graphs that is one line per edge pair; reloading the file regenerates the
// reciprocal orientations, so a write/read cycle preserves the graph.
package graphio
