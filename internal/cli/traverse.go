package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/dot"
	"github.com/matzehuels/pathspan/pkg/traverse"
)

// dfsCommand creates the dfs command for depth-first traversals.
func (c *CLI) dfsCommand() *cobra.Command {
	var asDOT bool

	cmd := &cobra.Command{
		Use:   "dfs <graph> <start>",
		Short: "Traverse the graph depth first from a start vertex",
		Long: `Traverse the graph depth first from a start vertex.

Besides the discovery and finish orders, depth-first runs record the literal
walk including backtracking moves, which --dot renders as a highlighted path
through the graph.`,
		Example: `  pathspan dfs network.json a
  pathspan dfs network.json a --dot | dot -Tsvg -o walk.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := traverse.DepthFirst(g, args[1])
			if err != nil {
				return err
			}

			if asDOT {
				fmt.Print(dot.Marshal(g, dot.Options[string]{HighlightPath: res.Walk}))
				return nil
			}

			printSuccess("Depth-first traversal finished")
			printKeyValue("Discovered", renderSequence(res.Discovered))
			printKeyValue("Explored", renderSequence(res.Explored))
			printKeyValue("Walk", renderSequence(res.Walk))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asDOT, "dot", false, "print a Graphviz DOT payload with the walk highlighted")

	return cmd
}

// bfsCommand creates the bfs command for breadth-first traversals.
func (c *CLI) bfsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs <graph> <start>",
		Short: "Traverse the graph breadth first from a start vertex",
		Long: `Traverse the graph breadth first from a start vertex.

Vertices are discovered level by level; the explored order matches the
dequeue order. Breadth-first runs record no walk, so there is no --dot
rendering for them.`,
		Example: `  pathspan bfs network.json a`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := traverse.BreadthFirst(g, args[1])
			if err != nil {
				return err
			}

			printSuccess("Breadth-first traversal finished")
			printKeyValue("Discovered", renderSequence(res.Discovered))
			printKeyValue("Explored", renderSequence(res.Explored))
			return nil
		},
	}

	return cmd
}
