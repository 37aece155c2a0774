// Package cli implements the pathspan command-line interface.
//
// Every command loads a graph definition file (JSON or TOML, selected by
// file extension), runs one query from the engine packages, and prints
// either a styled summary or a Graphviz DOT payload on stdout.
//
// # Commands
//
//   - path: minimum-weight simple path between two vertices
//   - mst: minimum spanning forest of an undirected graph
//   - dfs, bfs: traversal orders from a start vertex
//   - dot: DOT payload for a definition, with optional highlighting
//   - info: definition summary
//   - convert: re-encode a definition as JSON or TOML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers reach
// commands through context.Context; the engine packages never log on their
// own.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathspan/pkg/buildinfo"
	"github.com/matzehuels/pathspan/pkg/graph"
	"github.com/matzehuels/pathspan/pkg/graphio"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "pathspan",
		Short:         "Pathspan queries and renders weighted graphs",
		Long:          `Pathspan is a CLI tool for querying weighted graphs: shortest paths, minimum spanning forests, traversal orders, and Graphviz DOT payloads of the results.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.dfsCommand())
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph reads the definition at path and logs its shape.
func loadGraph(ctx context.Context, path string) (*graph.Graph[string], error) {
	g, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("Loaded graph",
		"path", path,
		"directed", g.Directed(),
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)
	return g, nil
}
