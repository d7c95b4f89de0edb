package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewPolyfitCommand creates the polyfit command.
func NewPolyfitCommand() *cobra.Command {
	var degree int

	cmd := &cobra.Command{
		Use:   "polyfit <x> <y>",
		Short: "Fit a polynomial and append the fitted values",
		Long: `Fit y as a polynomial in x by least squares and append a column
polyfit_<degree> with the fitted values. The degree defaults to 1
(a straight line).`,
		Example: `  # Linear fit
  tabula polyfit x y

  # Quadratic fit
  tabula polyfit x y --degree 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.PolyFit(t, args[0], args[1], degree)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().IntVar(&degree, "degree", 1, "polynomial degree")
	return cmd
}

// NewSlugifyCommand creates the slugify command.
func NewSlugifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify",
		Short: "Normalize column names into identifier-like tokens",
		Long: `Rewrite every column name as a slug: lowercase alphanumerics and
underscores only, with separator runs collapsed to single underscores.
Useful before eval, which binds columns as variables.`,
		Example: `  # "Stupid Column (1)" becomes stupid_column_1
  tabula slugify`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.SlugifyColumns(t)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Compute a column from an expression",
		Long: `Evaluate an assignment of the form "col = expression" once per row,
with the row's values bound as variables (column names are slugified to
valid identifiers). The target column is replaced, or appended when new.
Expressions are Starlark, so the usual operators work.`,
		Example: `  # Square a column in place
  tabula eval 'x = x**2'

  # Derive a new column
  tabula eval 'total = price * quantity'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Eval(t, args[0])
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}
