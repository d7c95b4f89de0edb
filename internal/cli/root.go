// Package cli provides the command-line interface for tabula.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tabula-cli/tabula/internal/cli/commands"
	"github.com/tabula-cli/tabula/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabula",
		Short: "tabula - CSV pipelines on the command line",
		Long: `tabula chains tabular operations over CSV-like data: read, filter,
transform, aggregate, write. Commands read a table from standard input (or
named files) and write CSV to standard output, so they compose with pipes:

  cat data.csv | tabula date start --dayfirst | tabula groupby region --how mean`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabula.yaml)")
	rootCmd.PersistentFlags().String("sep", "", `field separator ("," by default, "\t" or "tab" for tabs)`)
	rootCmd.PersistentFlags().String("decimal", "", `decimal mark in numeric input ("." by default)`)
	rootCmd.PersistentFlags().String("thousands", "", "thousands mark stripped from numeric input")
	rootCmd.PersistentFlags().Int("skiprows", 0, "lines to skip before parsing input")
	rootCmd.PersistentFlags().Bool("index", false, "emit a leading positional index column")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	for _, cmd := range commands.All(Version) {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

// Execute runs the root command. Expected failures surface as a single
// line on stderr; the caller maps a non-nil return to a non-zero exit.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
