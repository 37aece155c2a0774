package graphio

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// ReadTOML decodes a TOML graph definition from r.
//
// Edges are declared as an array of tables as described in the package
// documentation. Construction errors from [graph.New] pass through
// unchanged. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*graph.Graph[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var def definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return def.build()
}

// WriteTOML encodes g as a TOML definition and writes it to w.
// The output can be decoded again with [ReadTOML].
func WriteTOML(g *graph.Graph[string], w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(snapshot(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
