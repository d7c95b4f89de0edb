package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the column names",
		Long:  `Emit a one-column table named "columns" listing the input's header names.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.ColumnNames(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}
