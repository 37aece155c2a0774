package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/dot"
	"github.com/matzehuels/pathspan/pkg/graph"
)

// dotCommand creates the dot command for rendering definitions as DOT text.
func (c *CLI) dotCommand() *cobra.Command {
	var highlight string

	cmd := &cobra.Command{
		Use:   "dot <graph>",
		Short: "Render a graph definition as Graphviz DOT text",
		Long: `Render a graph definition as Graphviz DOT text on stdout.

The payload carries one line per canonical edge; undirected graphs use the
-- connector and directed graphs ->. Pipe the output to the Graphviz dot
binary or any compatible renderer.`,
		Example: `  pathspan dot network.json
  pathspan dot network.json --highlight a,c,f | dot -Tpng -o network.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var opts dot.Options[string]
			if highlight != "" {
				path, err := parseHighlight(g, highlight)
				if err != nil {
					return err
				}
				opts.HighlightPath = path
			}

			fmt.Print(dot.Marshal(g, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&highlight, "highlight", "", "comma-separated vertex path to highlight")

	return cmd
}

// parseHighlight splits a comma-separated vertex list and checks every
// vertex against g, so typos fail loudly instead of producing a payload
// with phantom nodes.
func parseHighlight(g *graph.Graph[string], s string) ([]string, error) {
	parts := strings.Split(s, ",")
	path := make([]string, len(parts))
	for i, p := range parts {
		v := strings.TrimSpace(p)
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("highlight vertex %q: %w", v, graph.ErrUnknownVertex)
		}
		path[i] = v
	}
	return path, nil
}
