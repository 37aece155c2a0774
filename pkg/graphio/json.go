package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/pathspan/pkg/graph"
)

// ReadJSON decodes a JSON graph definition from r.
//
// The input must carry "vertices" and "edges" arrays as described in the
// package documentation. Construction errors from [graph.New] pass through
// unchanged, so errors.Is works against [graph.ErrInvalidVertex] and
// [graph.ErrDuplicateVertex]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph[string], error) {
	var def definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return def.build()
}

// WriteJSON encodes g as an indented JSON definition and writes it to w.
// The output can be decoded again with [ReadJSON].
func WriteJSON(g *graph.Graph[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
