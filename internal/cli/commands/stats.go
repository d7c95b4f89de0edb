package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/ops"
)

// statCommands maps a command name to its one-line description; each becomes
// a subcommand reducing every numeric column to a single row.
var statCommands = []struct {
	name  string
	short string
}{
	{"sum", "Sum of each numeric column"},
	{"mean", "Mean of each numeric column"},
	{"median", "Median of each numeric column"},
	{"min", "Minimum of each numeric column"},
	{"max", "Maximum of each numeric column"},
	{"std", "Sample standard deviation of each numeric column"},
}

// NewStatCommands creates the per-column reduction commands (sum, mean,
// median, min, max, std).
func NewStatCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(statCommands))
	for _, sc := range statCommands {
		how := sc.name
		cmds = append(cmds, &cobra.Command{
			Use:   how,
			Short: sc.short,
			Long: fmt.Sprintf(`Reduce every numeric column with %s, emitting a one-row table.
Non-numeric columns are left out.`, how),
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := NewCommandContext(cmd)
				t, err := ctx.ReadInput()
				if err != nil {
					return err
				}
				out, err := ops.Aggregate(t, how)
				if err != nil {
					return err
				}
				return ctx.WriteOutput(out)
			},
		})
	}
	return cmds
}
