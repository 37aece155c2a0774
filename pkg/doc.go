// Package pkg provides the core libraries for Pathspan graph queries.
//
// # Overview
//
// Pathspan answers path, spanning-tree, and traversal queries over small
// weighted graphs and renders the answers as Graphviz DOT payloads. The pkg
// directory is organized into three main areas:
//
//  1. [graph] - The graph value itself (vertices, weighted edges, adjacency)
//  2. [search], [spantree], [traverse] - Query engines over a graph
//  3. [graphio], [dot] - Wire formats (JSON/TOML definitions in, DOT out)
//
// # Architecture
//
// The typical data flow through Pathspan:
//
//	Graph definition (JSON/TOML)
//	         ↓
//	    [graphio] package (decode + validate)
//	         ↓
//	    [graph] package (reciprocal closure, canonical edge list)
//	         ↓
//	    [search] / [spantree] / [traverse] packages (queries)
//	         ↓
//	    [dot] package (Graphviz payload with highlights)
//
// # Quick Start
//
// Load a definition, find the cheapest path, and render it:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/pathspan/pkg/dot"
//	    "github.com/matzehuels/pathspan/pkg/graphio"
//	    "github.com/matzehuels/pathspan/pkg/search"
//	)
//
//	// 1. Load a graph definition
//	g, _ := graphio.Load("network.json")
//
//	// 2. Query it
//	res, _ := search.ShortestPath(g, "a", "c")
//
//	// 3. Render the result
//	fmt.Print(dot.Marshal(g, dot.Options[string]{HighlightPath: res.Path}))
//
// # Main Packages
//
// ## Graph Model
//
// [graph] - Generic vertex/edge store. Undirected graphs keep one adjacency
// entry per direction of every declared edge, and every graph keeps a
// canonical edge list in declaration order so queries and renders are
// deterministic.
//
// ## Query Engines
//
// [search] - Exhaustive cheapest-path search over simple paths. Tolerates
// negative edge weights and reports an opportunistic cost trace alongside
// the winning path.
//
// [spantree] - Minimum spanning tree construction by ascending edge scan
// with union-find cycle detection. Disconnected inputs produce a spanning
// forest, one tree per component.
//
// [traverse] - Depth-first and breadth-first traversal orders. Depth-first
// runs also record the literal walk, backtracking moves included, which is
// what the CLI renders as a highlighted route.
//
// ## Wire Formats
//
// [graphio] - Reads and writes graph definitions as JSON or TOML. Both
// formats share one document shape and validation path, so a definition can
// be converted between them without loss.
//
// [dot] - Marshals a graph into Graphviz DOT text, optionally highlighting
// a path or an explicit edge set in red. The payload is plain text on
// stdout; turning it into an image is the caller's business.
//
// ## Build Metadata
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/search/...    # Specific package
//	go test -run Example        # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/graph
// [graphio]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/graphio
// [search]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/search
// [spantree]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/spantree
// [traverse]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/traverse
// [dot]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/dot
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pathspan/pkg/buildinfo
package pkg
