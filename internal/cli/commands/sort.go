package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	var descending bool

	cmd := &cobra.Command{
		Use:   "sort <column>",
		Short: "Sort rows by a column",
		Long:  `Stably sort rows by the named column, ascending unless --descending.`,
		Example: `  tabula sort price
  tabula sort price --descending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.SortBy(t, args[0], descending)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().BoolVar(&descending, "descending", false, "sort highest first")
	return cmd
}
