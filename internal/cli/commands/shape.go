package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewShapeCommand creates the shape command.
func NewShapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shape",
		Short: "Print the row and column counts",
		Long:  `Emit a one-row table with columns "rows" and "columns".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Shape(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Summary statistics per column",
		Long: `Emit summary statistics for each column: mean, median, standard
deviation, minimum, quartiles and maximum.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Describe(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Flip rows and columns",
		Long: `Transpose the table. The output header is the original row index;
original column names are dropped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Transpose(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}

// NewIndexCommand creates the index command.
func NewIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Prepend a positional index column",
		Long:  `Prepend a 0-based "index" column to the table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Index(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}
