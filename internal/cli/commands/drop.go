package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	var axis string

	cmd := &cobra.Command{
		Use:   "drop <label...>",
		Short: "Remove columns or rows",
		Long: `Remove named columns (--axis columns) or positional rows
(--axis index, the default). Dropping an absent column fails with
"No such column"; remaining rows keep their relative order.`,
		Example: `  # Drop two columns
  tabula drop setosa virginica --axis columns

  # Drop the first row
  tabula drop 0 --axis index`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Drop(t, args, axis)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().StringVar(&axis, "axis", "index", "drop axis (index|columns)")
	return cmd
}
