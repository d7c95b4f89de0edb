package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// NewDateCommand creates the date command.
func NewDateCommand() *cobra.Command {
	var opts ops.DateOptions

	cmd := &cobra.Command{
		Use:   "date [column]",
		Short: "Parse a column as dates",
		Long: `Parse the named column into dates. Without a column, a table carrying
year/month/day columns is assembled into a single date column named "0";
otherwise every column is parsed in place.

--unit D reads numeric cells as days since the epoch. --dayfirst prefers
day-month ordering for ambiguous dates. --errors picks what happens to
unparseable values: raise (fail, the default), coerce (blank them) or
ignore (leave the column untouched).`,
		Example: `  # Parse one column
  tabula date dateRep --dayfirst

  # Days since the epoch
  tabula date x --unit D

  # Blank out the stragglers instead of failing
  tabula date year --errors coerce`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col := ""
			if len(args) == 1 {
				col = args[0]
			}
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.ParseDates(t, col, opts)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}

	cmd.Flags().StringVar(&opts.Unit, "unit", "", "numeric unit since the epoch (D for days)")
	cmd.Flags().BoolVar(&opts.DayFirst, "dayfirst", false, "prefer day-month ordering")
	cmd.Flags().StringVar(&opts.Errors, "errors", "raise", "on parse failure: raise|coerce|ignore")
	return cmd
}
