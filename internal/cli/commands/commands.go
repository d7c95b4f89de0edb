package commands

import "github.com/spf13/cobra"

// All returns every tabula subcommand. The returned slice is the command
// registry: it is built once at startup and handed to the root command,
// which also serves `help <command>` and the unknown-command error from it.
func All(version string) []*cobra.Command {
	cmds := []*cobra.Command{
		NewCatCommand(),
		NewOpenCommand(),
		NewFromCommand(),
		NewToCommand(),
		NewColumnsCommand(),
		NewShapeCommand(),
		NewDescribeCommand(),
		NewTransposeCommand(),
		NewIndexCommand(),
		NewHeadCommand(),
		NewTailCommand(),
		NewDropCommand(),
		NewDropNACommand(),
		NewFillNACommand(),
		NewSortCommand(),
		NewGroupByCommand(),
		NewMergeCommand(),
		NewDateCommand(),
		NewPolyfitCommand(),
		NewSlugifyCommand(),
		NewEvalCommand(),
		NewTabulateCommand(),
		NewVersionCommand(version),
	}
	cmds = append(cmds, NewStatCommands()...)
	return cmds
}
