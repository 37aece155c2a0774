package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/dot"
	"github.com/matzehuels/pathspan/pkg/search"
)

// pathCommand creates the path command for shortest-path queries.
func (c *CLI) pathCommand() *cobra.Command {
	var asDOT bool

	cmd := &cobra.Command{
		Use:   "path <graph> <from> <to>",
		Short: "Find the minimum-weight path between two vertices",
		Long: `Find the minimum-weight simple path between two vertices.

The search enumerates simple paths exhaustively, which keeps results correct
when edge weights are negative. Expect long runtimes on dense graphs.`,
		Example: `  # Styled summary
  pathspan path network.json a c

  # Graphviz payload with the found path highlighted
  pathspan path network.json a c --dot | dot -Tsvg -o path.svg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := search.ShortestPath(g, args[1], args[2])
			if err != nil {
				return err
			}
			p.done("Search finished")

			if asDOT {
				fmt.Print(dot.Marshal(g, dot.Options[string]{HighlightPath: res.Path}))
				return nil
			}

			if res.Path == nil {
				printWarning("No path from %s to %s", args[1], args[2])
				return nil
			}

			printSuccess("Shortest path found")
			printKeyValue("Path", renderSequence(res.Path))
			printKeyValue("Weight", formatWeight(res.Weight))
			printStats(g.VertexCount(), g.EdgeCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDOT, "dot", false, "print a Graphviz DOT payload with the path highlighted")

	return cmd
}
