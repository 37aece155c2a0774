package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/graphio"
)

// convertCommand creates the convert command for re-encoding definitions.
func (c *CLI) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <graph>",
		Short: "Re-encode a graph definition to stdout",
		Long: `Re-encode a graph definition in another format on stdout.

The output lists the canonical edge enumeration, so converting an
undirected definition drops redundant reverse declarations.`,
		Example: `  pathspan convert network.json --to toml > network.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch to {
			case "json":
				return graphio.WriteJSON(g, os.Stdout)
			case "toml":
				return graphio.WriteTOML(g, os.Stdout)
			}
			return fmt.Errorf("unsupported output format %q (want json or toml)", to)
		},
	}

	cmd.Flags().StringVar(&to, "to", "json", "output format: json or toml")

	return cmd
}
