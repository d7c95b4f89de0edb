package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/frame"
	"github.com/tabula-cli/tabula/internal/ops"
)

const defaultHeadRows = 10

func parseRowCount(args []string) (int, error) {
	if len(args) == 0 {
		return defaultHeadRows, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, frame.Errorf("Row count must be an integer, got %s", args[0])
	}
	return n, nil
}

// NewHeadCommand creates the head command.
func NewHeadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "head [n]",
		Short: "Keep the first n rows",
		Long:  `Keep the first n rows of the table (10 by default).`,
		Example: `  tabula head
  tabula head 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRowCount(args)
			if err != nil {
				return err
			}
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Head(t, n)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}

// NewTailCommand creates the tail command.
func NewTailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tail [n]",
		Short: "Keep the last n rows",
		Long:  `Keep the last n rows of the table (10 by default).`,
		Example: `  tabula tail
  tabula tail 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRowCount(args)
			if err != nil {
				return err
			}
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}
			out, err := ops.Tail(t, n)
			if err != nil {
				return err
			}
			return ctx.WriteOutput(out)
		},
	}
}
