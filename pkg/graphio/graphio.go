package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// ErrUnsupportedFormat is returned by [Load] for file extensions no codec
// handles.
var ErrUnsupportedFormat = errors.New("unsupported graph file format")

// definition is the wire form shared by the JSON and TOML codecs.
type definition struct {
	Directed bool       `json:"directed,omitempty" toml:"directed,omitempty"`
	Vertices []string   `json:"vertices" toml:"vertices"`
	Edges    []edgeSpec `json:"edges" toml:"edges"`
}

type edgeSpec struct {
	From   string  `json:"from" toml:"from"`
	To     string  `json:"to" toml:"to"`
	Weight float64 `json:"weight" toml:"weight"`
}

// build validates the decoded definition through the regular construction
// path.
func (d definition) build() (*graph.Graph[string], error) {
	edges := make([]graph.Edge[string], len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = graph.Edge[string]{From: e.From, To: e.To, Weight: e.Weight}
	}
	return graph.New(d.Vertices, edges, d.Directed)
}

// snapshot captures g as a definition using its canonical edge enumeration.
func snapshot(g *graph.Graph[string]) definition {
	d := definition{
		Directed: g.Directed(),
		Vertices: g.Vertices(),
		Edges:    make([]edgeSpec, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, edgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}
	return d
}

// Load reads a graph definition from path, selecting the codec by file
// extension. ".json" and ".toml" are supported; anything else fails with
// [ErrUnsupportedFormat].
func Load(path string) (*graph.Graph[string], error) {
	var read func(io.Reader) (*graph.Graph[string], error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".toml":
		read = ReadTOML
	default:
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
