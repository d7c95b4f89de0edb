package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewTabulateCommand creates the tabulate command.
func NewTabulateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tabulate",
		Short: "Pretty-print the table",
		Long: `Render the table as an aligned text table for human eyes. The output is
not CSV, so tabulate belongs at the end of a pipeline.`,
		Example: `  cat data.csv | tabula groupby region --as-index=false | tabula tabulate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			t, err := ctx.ReadInput()
			if err != nil {
				return err
			}

			records := t.Records()
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)

			header := make(table.Row, len(records[0]))
			for i, name := range records[0] {
				header[i] = name
			}
			tw.AppendHeader(header)
			for _, rec := range records[1:] {
				row := make(table.Row, len(rec))
				for i, cell := range rec {
					row[i] = cell
				}
				tw.AppendRow(row)
			}
			tw.Render()
			return nil
		},
	}
}
