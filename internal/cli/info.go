package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/spantree"
)

// infoCommand creates the info command for definition summaries.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info <graph>",
		Short:   "Show summary statistics for a graph definition",
		Example: `  pathspan info network.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			kind := "undirected"
			if g.Directed() {
				kind = "directed"
			}

			var total float64
			for _, e := range g.Edges() {
				total += e.Weight
			}

			printSuccess("Loaded %s", args[0])
			printKeyValue("Type", kind)
			printKeyValue("Vertices", strconv.Itoa(g.VertexCount()))
			printKeyValue("Edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue("Weight", formatWeight(total))

			// Spanning forests leave n-c edges, which gives the component
			// count without a dedicated query.
			if !g.Directed() && g.VertexCount() > 0 {
				forest, err := spantree.Minimum(g)
				if err != nil {
					return err
				}
				components := g.VertexCount() - len(forest.Edges)
				printKeyValue("Components", strconv.Itoa(components))
			}

			printNextStep("Render it", "pathspan dot "+args[0])
			return nil
		},
	}

	return cmd
}
