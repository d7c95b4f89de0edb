// Package commands implements the tabula subcommands. Every command is a
// thin dispatch: read a table from standard input or named files, hand it
// to one operation handler, serialize the result to standard output.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/cli/config"
	"github.com/tabula-cli/tabula/internal/frame"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger

	cmd *cobra.Command
}

// NewCommandContext creates a CommandContext bound to the command's streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.GetCurrentConfig(),
		Logger: slog.Default(),
		cmd:    cmd,
	}
}

// ReadOptions returns the input options from the loaded configuration.
func (c *CommandContext) ReadOptions() frame.ReadOptions {
	return frame.ReadOptions{
		Separator: c.Cfg.Separator,
		Decimal:   c.Cfg.Decimal,
		Thousands: c.Cfg.Thousands,
		SkipRows:  c.Cfg.SkipRows,
	}
}

// WriteOptions returns the output options. Output is canonical
// comma-separated CSV regardless of the input separator; only the `to`
// command overrides that.
func (c *CommandContext) WriteOptions() frame.WriteOptions {
	return frame.WriteOptions{
		Separator: ",",
		Index:     c.Cfg.Index,
	}
}

// ReadInput parses the table from the command's standard input.
func (c *CommandContext) ReadInput() (*frame.Table, error) {
	c.Logger.Debug("reading table from stdin",
		"separator", c.Cfg.Separator, "skiprows", c.Cfg.SkipRows)
	return frame.Read(c.cmd.InOrStdin(), c.ReadOptions())
}

// ReadInputFile parses the table from a named file.
func (c *CommandContext) ReadInputFile(path string) (*frame.Table, error) {
	c.Logger.Debug("reading table from file", "path", path)
	return frame.ReadFile(path, c.ReadOptions())
}

// WriteOutput serializes the table to the command's standard output.
func (c *CommandContext) WriteOutput(t *frame.Table) error {
	return frame.Write(t, c.cmd.OutOrStdout(), c.WriteOptions())
}
