package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewDropNACommand creates the dropna command.
func NewDropNACommand() *cobra.Command {
	var opts ops.DropNAOptions

	cmd := &cobra.Command{
		Use:   "dropna",
		Short: "Drop rows or columns with missing values",
		Long: `Drop rows (--axis 0, the default) or columns (--axis 1) containing
missing values. --how all drops only fully-missing lines; --thresh n keeps
lines holding at least n non-missing cells and overrides --how.`,
		Example: `  # Drop rows with any missing cell
  tabula dropna

  # Keep rows with at least 7 present cells
  tabula dropna --thresh 7

  # Drop sparse columns
  tabula dropna --axis 1 --thresh 17`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.DropNA(t, opts)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().IntVar(&opts.Axis, "axis", 0, "0 drops rows, 1 drops columns")
	cmd.Flags().StringVar(&opts.How, "how", "any", "drop when any or all cells are missing")
	cmd.Flags().IntVar(&opts.Thresh, "thresh", 0, "minimum non-missing cells to keep a line")
	return cmd
}

// NewFillNACommand creates the fillna command.
func NewFillNACommand() *cobra.Command {
	var opts ops.FillNAOptions

	cmd := &cobra.Command{
		Use:   "fillna [value]",
		Short: "Replace missing values",
		Long: `Replace missing cells with a literal value, or forward-fill them from
the previous row with --method pad. --limit caps fills per column (for
--method pad, per run of consecutive missing cells).`,
		Example: `  # Fill every hole with 0
  tabula fillna 0

  # Forward-fill up to 5 consecutive holes
  tabula fillna --method pad --limit 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Value = args[0]
			}
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.FillNA(t, opts)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", "", "fill method (pad)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum fills per column")
	return cmd
}
