package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryansmg/graphgen/pkg/pipeline"
)

// shapesCommand creates the shapes command listing every generator.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available graph shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, shapesTable(pipeline.Shapes))
			printNextStep("Generate one", "graphgen generate tree -n 10")
			return nil
		},
	}
}
