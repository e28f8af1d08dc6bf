package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryansmg/graphgen/pkg/errors"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/pipeline"
)

// renderCommand creates the render command for drawing a saved graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Draw a graph saved with --format json",
		Long: `Draw a graph saved with 'graphgen generate -f json'.

The graph is laid out by Graphviz and written as DOT, SVG or PNG. Rendered
diagrams are cached by graph content.

Examples:
  graphgen generate halin -n 12 -f json -o halin.json
  graphgen render halin.json -f svg,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := opts.ValidateFormats(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.Directed, "directed", false, "draw edges as arrows")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label nodes with their degree")
	cmd.Flags().StringVar(&opts.Label, "label", "", "graph caption")

	return cmd
}

// runRender loads the graph and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.RenderOptions, output string, noCache bool) error {
	g, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("Loaded graph", "file", input, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		stopInterrupted(spinner, "Render")
		return err
	}
	spinner.StopWithSuccess("Rendered " + filepath.Base(input))
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)

	base := basePath(output, input)
	for _, format := range opts.Formats {
		path := base + "." + format
		if len(opts.Formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path. Without output, the input's
// extension is stripped; a diagram extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidDiagramFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
