// Package dot renders a [graph.Graph] as Graphviz DOT text.
//
// [Marshal] produces a deterministic payload: one line per canonical edge in
// enumeration order, undirected edges joined with "--" and directed edges
// with "->". Callers hand the text to whatever renders or stores it; this
// package never touches the filesystem.
//
// Vertex labels are written verbatim through the fmt package, so callers own
// their lexical validity: labels that are not plain DOT identifiers (spaces,
// quotes, keywords) will produce payloads Graphviz rejects.
package dot

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// Options selects which parts of the rendered graph are emphasized.
type Options[V comparable] struct {
	// HighlightPath is an ordered vertex walk. Each consecutive pair
	// becomes a highlighted edge, the first vertex is marked as the start
	// (yellow fill) and the last as the end (green double circle). On
	// undirected graphs both orientations of a pair light up the same
	// edge.
	HighlightPath []V

	// HighlightEdges lists vertex pairs to emphasize independently: no
	// adjacency is implied and no start or end markers are emitted. When
	// it holds at least one pair it takes precedence over HighlightPath.
	HighlightEdges [][2]V
}

// Marshal renders g as DOT text suitable for Graphviz.
func Marshal[V comparable](g *graph.Graph[V], opts Options[V]) string {
	var buf bytes.Buffer
	if g.Directed() {
		buf.WriteString("digraph G {\n")
	} else {
		buf.WriteString("graph G {\n")
	}
	buf.WriteString("bgcolor=\"#00000000\";\n")
	buf.WriteString("graph[nodesep=\"0.2\", ranksep=\"0.0\", splines=\"curved\", dpi=150, fixedsize=true];\n")
	buf.WriteString("node[shape=circle, fillcolor=white, style=filled];\n")

	pathForm := len(opts.HighlightEdges) == 0 && len(opts.HighlightPath) > 0
	if pathForm {
		fmt.Fprintf(&buf, "%v[fillcolor=yellow];\n", opts.HighlightPath[0])
		fmt.Fprintf(&buf, "%v[shape=doublecircle, fillcolor=green];\n", opts.HighlightPath[len(opts.HighlightPath)-1])
	}

	marked := highlightSet(opts)
	connector := "--"
	if g.Directed() {
		connector = "->"
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "%v %s %v[label=%q", e.From, connector, e.To, formatWeight(e.Weight))
		if marked[[2]V{e.From, e.To}] || (!g.Directed() && marked[[2]V{e.To, e.From}]) {
			buf.WriteString(", color=red, penwidth=2")
		}
		buf.WriteString("];\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// highlightSet resolves the option fields into the set of vertex pairs to
// emphasize. Orientation handling happens at lookup time, not here.
func highlightSet[V comparable](opts Options[V]) map[[2]V]bool {
	set := make(map[[2]V]bool)
	if len(opts.HighlightEdges) > 0 {
		for _, p := range opts.HighlightEdges {
			set[p] = true
		}
		return set
	}
	for i := 0; i+1 < len(opts.HighlightPath); i++ {
		set[[2]V{opts.HighlightPath[i], opts.HighlightPath[i+1]}] = true
	}
	return set
}

// formatWeight renders a weight without a trailing fractional zero, so a
// 3.0 edge is labeled "3" and a 2.5 edge "2.5".
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
