package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewGroupByCommand creates the groupby command.
func NewGroupByCommand() *cobra.Command {
	var (
		how     string
		asIndex bool
	)

	cmd := &cobra.Command{
		Use:   "groupby <column>",
		Short: "Group rows by a column and aggregate the rest",
		Long: `Group rows by the values of a column and aggregate the remaining
numeric columns with --how (sum by default; count and first also take
non-numeric columns). Group keys come out sorted. With --as-index (the
default) the key column is the index and is not emitted; pass
--as-index=false to keep it as the first output column.`,
		Example: `  # Total per animal
  tabula groupby Animal

  # Observations per animal, keeping the key column
  tabula groupby Animal --how count --as-index=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.GroupBy(t, args[0], how, asIndex)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().StringVar(&how, "how", "sum",
		"aggregation (sum|mean|median|min|max|std|count|first)")
	cmd.Flags().BoolVar(&asIndex, "as-index", true,
		"use the group key as index instead of a column")
	return cmd
}
