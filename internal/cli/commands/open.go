package commands

import (
	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/frame"
)

// readFormat reads a table for one of the supported source formats.
func readFormat(ctx *CommandContext, format, path string) (*frame.Table, error) {
	opts := ctx.ReadOptions()
	switch format {
	case "csv":
	case "tsv":
		opts.Separator = "\t"
	case "clipboard":
		return frame.ReadClipboard(opts)
	default:
		return nil, frame.Errorf("Format must be one of {csv, tsv, clipboard}, got %s", format)
	}
	if path == "" {
		return frame.Read(ctx.cmd.InOrStdin(), opts)
	}
	return frame.ReadFile(path, opts)
}

// NewOpenCommand creates the open command.
func NewOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <format> <path>",
		Short: "Read a named file and emit it as CSV",
		Long: `Read a named file in the given format (csv or tsv) and emit it as
canonical CSV. Input options like --sep, --skiprows, --decimal and
--thousands apply while reading.`,
		Example: `  # Read a semicolon-separated file
  tabula open csv data.scsv --sep ';'

  # Skip a preamble before the header
  tabula open csv report.csv --skiprows 6`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := readFormat(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return ctx.WriteOutput(t)
		},
	}
	return cmd
}

// NewFromCommand creates the from command.
func NewFromCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from <format>",
		Short: "Re-read standard input with explicit input options",
		Long: `Re-read standard input in the given format (csv, tsv or clipboard) and
emit it as canonical CSV. Useful at the head of a pipeline to normalize
exotic separators, decimal marks or preamble rows.

The clipboard format reads the platform clipboard instead of stdin.`,
		Example: `  # Semicolon-separated input
  tabula from csv --sep ';'

  # European number formatting
  tabula from csv --decimal ',' --thousands '.'

  # Paste a table copied from a spreadsheet
  tabula from clipboard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			t, err := readFormat(ctx, args[0], "")
			if err != nil {
				return err
			}
			return ctx.WriteOutput(t)
		},
	}
	return cmd
}

// NewToCommand creates the to command.
func NewToCommand() *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "to <format>",
		Short: "Re-emit standard input with explicit output options",
		Long: `Read CSV from standard input and re-emit it in the given format: csv
(with an optional output separator), tsv, or clipboard. --index adds a
leading positional index column.`,
		Example: `  # Emit underscore-separated values
  tabula to csv --sep '_'

  # Emit tab-separated values
  tabula to tsv

  # Copy the table onto the clipboard
  tabula to clipboard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo(cmd, args[0], sep)
		},
	}

	// Shadows the global --sep on purpose: here it is the *output*
	// separator, input is read with the configured defaults.
	cmd.Flags().StringVar(&sep, "sep", "", "output field separator")
	return cmd
}

func runTo(cmd *cobra.Command, format, sep string) error {
	ctx := NewCommandContext(cmd)
	t, err := frame.Read(cmd.InOrStdin(), frame.DefaultReadOptions())
	if err != nil {
		return err
	}

	opts := ctx.WriteOptions()
	switch format {
	case "csv":
		if sep != "" {
			opts.Separator = sep
		}
	case "tsv":
		opts.Separator = "\t"
	case "clipboard":
		return frame.WriteClipboard(t, opts)
	default:
		return frame.Errorf("Format must be one of {csv, tsv, clipboard}, got %s", format)
	}
	return frame.Write(t, cmd.OutOrStdout(), opts)
}
