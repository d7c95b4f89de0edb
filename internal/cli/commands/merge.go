package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	var (
		how string
		on  string
	)

	cmd := &cobra.Command{
		Use:   "merge <left> <right>",
		Short: "Relational join of two files",
		Long: `Join two CSV files. --how selects the join type (inner by default);
--on names the join column(s), comma-separated, defaulting to the
intersection of the two headers.`,
		Example: `  # Inner join on all shared columns
  tabula merge left.csv right.csv

  # Keep unmatched rows from both sides
  tabula merge left.csv right.csv --how outer

  # Join on one key only
  tabula merge left.csv right.csv --on key1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			left, err := ctx.ReadInputFile(args[0])
			if err != nil {
				return err
			}
			right, err := ctx.ReadInputFile(args[1])
			if err != nil {
				return err
			}
			out, err := ops.Merge(left, right, how, ops.SplitOn(on))
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().StringVar(&how, "how", "inner", "join type (inner|left|right|outer)")
	cmd.Flags().StringVar(&on, "on", "", "join column(s), comma-separated")
	return cmd
}
