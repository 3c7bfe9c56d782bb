package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/depviz/pkg/io"
	"github.com/matzehuels/depviz/pkg/render/nodelink"
)

// renderCommand creates the render command for drawing an exported graph.json.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render an exported dependency graph",
		Long: `Render a graph written by 'depviz graph --json'.

The output format follows the extension of --output: .svg for SVG,
.dot or .gv for Graphviz source, anything else for PNG. Rendering runs
in-process; no Graphviz installation is needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output file (.png, .svg, .dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "split labels into group, artifact and version lines")

	return cmd
}

// runRender reads input and writes the rendered graph to output.
func (c *CLI) runRender(ctx context.Context, input, output string, detailed bool) error {
	logger := loggerFromContext(ctx)

	doc, err := pkgio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("import graph: %w", err)
	}
	logger.Debug("Loaded graph", "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	done := stopwatch(logger)
	dot := nodelink.ToDOT(doc.Edges, nodelink.Options{Root: doc.Root, Detailed: detailed})
	if err := writeImage(ctx, dot, output); err != nil {
		return err
	}
	done("Rendered " + output)

	printSuccess("Rendered %d nodes", len(doc.Nodes))
	printFile(output)
	return nil
}
