package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryansmg/graphgen/pkg/errors"
	graphio "github.com/ryansmg/graphgen/pkg/io"
	"github.com/ryansmg/graphgen/pkg/pipeline"
	"github.com/ryansmg/graphgen/pkg/rnd"
)

// generateFlags holds the flags of the generate command that do not map
// directly onto pipeline.Options.
type generateFlags struct {
	format     string
	output     string
	elongation int
	first      int
	last       int
	root       int
	noCache    bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [shape]",
		Short: "Generate one random graph",
		Long: `Generate one random graph and print it.

The shape picks the generator (see 'graphgen shapes'). Without a shape on an
interactive terminal a picker is shown.

The seed defaults to a hash of the shape and the graph flags, so repeating a
command repeats its graph. Output and cache flags do not change the seed. Generated graphs are cached by their parameters.

Examples:
  graphgen generate tree -n 10
  graphgen generate connected -n 100 -m 150 --shuffle all-undir
  graphgen generate path -n 6 --first 2 --last 5 -f csacademy
  graphgen generate cactus -n 20 --tree-nodes 8 --cycles 3 -o cactus.txt`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeShapes,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Shape = args[0]
			} else if isInteractive() {
				shape, err := pickShape()
				if err != nil {
					return err
				}
				opts.Shape = shape
			} else {
				return errors.New(errors.ErrCodeInvalidShape, "shape required (one of: %s)", strings.Join(pipeline.ShapeNames(), ", "))
			}
			if cmd.Flags().Changed("elongation") {
				opts.Elongation = &flags.elongation
			}
			if cmd.Flags().Changed("first") {
				opts.First = &flags.first
			}
			if cmd.Flags().Changed("last") {
				opts.Last = &flags.last
			}
			if cmd.Flags().Changed("root") {
				opts.Root = &flags.root
			}
			if !cmd.Flags().Changed("seed") {
				opts.Seed = derivedSeed(cmd, opts.Shape)
			}
			return c.runGenerate(cmd.Context(), opts, flags)
		},
	}

	cmd.Flags().IntVarP(&opts.Nodes, "nodes", "n", 0, "number of nodes")
	cmd.Flags().IntVarP(&opts.Edges, "edges", "m", 0, "number of edges (connected, random)")
	cmd.Flags().IntVar(&opts.TreeNodes, "tree-nodes", 0, "nodes in the spanning tree (cactus)")
	cmd.Flags().IntVar(&opts.Cycles, "cycles", 0, "number of cycles (cactus)")
	cmd.Flags().IntVar(&flags.elongation, "elongation", 0, "tree elongation: >0 long paths, <0 bushy, unset uniform")
	cmd.Flags().IntVar(&flags.first, "first", 0, "first node of the path (path)")
	cmd.Flags().IntVar(&flags.last, "last", 0, "last node of the path (path)")
	cmd.Flags().IntVar(&flags.root, "root", 0, "center node (star, default 1)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default: derived from the shape and graph flags)")
	cmd.Flags().StringVar(&opts.Shuffle, "shuffle", pipeline.DefaultShuffle, "post-shuffle: none, nodes, edges, edges-undir, all, all-undir")
	cmd.Flags().BoolVar(&opts.AsTree, "tree", false, "verify the result is a tree (tree shapes only)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: plain (default), plain0, csacademy, edges, json, dot")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate and replace the cached graph")

	_ = cmd.RegisterFlagCompletionFunc("shuffle", cobra.FixedCompletions(pipeline.ShuffleModes, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runGenerate executes the pipeline and writes the formatted graph.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, flags generateFlags) error {
	opts.Format = graphio.Format(flags.format)

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := c.out.Write(result.Output)
		return err
	}
	if err := os.WriteFile(flags.output, result.Output, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", flags.output)
	}
	printSuccess("Generated %s", opts.Shape)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheHit)
	printFile(flags.output)
	return nil
}

// graphFlags are the generate flags that change the graph itself. Output
// and cache flags are left out so they never change the derived seed.
var graphFlags = []string{"nodes", "edges", "tree-nodes", "cycles", "elongation", "first", "last", "root", "shuffle", "tree"}

// derivedSeed hashes the shape and the value of every graph flag in one
// fixed spelling, so "-n 8" and "--nodes=8" pick the same seed, and so does
// spelling out a default.
func derivedSeed(cmd *cobra.Command, shape string) uint64 {
	args := []string{strings.ToLower(shape)}
	for _, name := range graphFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			args = append(args, "--"+name+"="+f.Value.String())
		}
	}
	return rnd.SeedFromArgs(args)
}

// completeShapes completes the shape argument.
func completeShapes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return pipeline.ShapeNames(), cobra.ShellCompDirectiveNoFileComp
}
