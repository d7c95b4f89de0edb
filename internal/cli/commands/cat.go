package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/frame"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewCatCommand creates the cat command.
func NewCatCommand() *cobra.Command {
	var axis string

	cmd := &cobra.Command{
		Use:   "cat [file...]",
		Short: "Read tables and write them back as CSV",
		Long: `Read a table from standard input, or one or more named files, and write
it back as CSV. With several files the tables are concatenated: row-wise
with --axis index (the default, taking the union of columns), or
column-wise with --axis columns (shorter tables padded with empty rows).`,
		Example: `  # Normalize a file to canonical CSV
  tabula cat data.csv

  # Stack two files row-wise
  tabula cat jan.csv feb.csv

  # Put two files side by side
  tabula cat left.csv right.csv --axis columns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, args, axis)
		},
	}

	cmd.Flags().StringVar(&axis, "axis", "index", "concatenation axis (index|columns)")
	return cmd
}

func runCat(cmd *cobra.Command, args []string, axis string) error {
	ctx := NewCommandContext(cmd)

	if len(args) == 0 {
		t, err := ctx.ReadInput()
		if err != nil {
			return err
		}
		return ctx.WriteOutput(t)
	}

	tables := make([]*frame.Table, 0, len(args))
	for _, path := range args {
		t, err := ctx.ReadInputFile(path)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}
	out, err := ops.Concat(tables, axis)
	if err != nil {
		return err
	}
	return ctx.WriteOutput(out)
}
