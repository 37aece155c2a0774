package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/dot"
	"github.com/matzehuels/pathspan/pkg/spantree"
)

// mstCommand creates the mst command for minimum spanning forests.
func (c *CLI) mstCommand() *cobra.Command {
	var asDOT bool

	cmd := &cobra.Command{
		Use:   "mst <graph>",
		Short: "Compute the minimum spanning forest of an undirected graph",
		Long: `Compute the minimum spanning forest of an undirected graph.

Edges are listed in selection order. Disconnected definitions produce one
tree per component.`,
		Example: `  pathspan mst network.toml

  # Original graph with the selected edges highlighted
  pathspan mst network.toml --dot | dot -Tsvg -o forest.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			// The forest construction assumes symmetric connectivity and
			// does not check for it, so the check lives here.
			if g.Directed() {
				return fmt.Errorf("mst needs an undirected graph, %s is directed", args[0])
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := spantree.Minimum(g)
			if err != nil {
				return err
			}
			p.done("Forest built")

			if asDOT {
				pairs := make([][2]string, len(res.Edges))
				for i, e := range res.Edges {
					pairs[i] = [2]string{e.From, e.To}
				}
				fmt.Print(dot.Marshal(g, dot.Options[string]{HighlightEdges: pairs}))
				return nil
			}

			printSuccess("Spanning forest computed")
			for _, e := range res.Edges {
				printDetail("%s - %s (%s)", e.From, e.To, formatWeight(e.Weight))
			}
			printKeyValue("Edges", strconv.Itoa(len(res.Edges)))
			printKeyValue("Weight", formatWeight(res.Weight))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDOT, "dot", false, "print a Graphviz DOT payload with selected edges highlighted")

	return cmd
}
