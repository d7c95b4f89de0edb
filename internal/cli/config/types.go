// Package config provides configuration management for the tabula CLI.
//
// Options layer in the usual precedence order: built-in defaults, then a
// tabula.yaml config file, then TABULA_* environment variables, then flags.
package config

// Defaults for the I/O options.
const (
	DefaultSeparator = ","
	DefaultDecimal   = "."
)

// Config holds the CLI configuration: the input/output options every
// command starts from before its own flags are applied.
type Config struct {
	// Separator is the field delimiter for reading and writing.
	Separator string `koanf:"separator"`
	// Decimal is the decimal mark expected in numeric input cells.
	Decimal string `koanf:"decimal"`
	// Thousands is the grouping mark stripped from numeric input cells.
	Thousands string `koanf:"thousands"`
	// SkipRows skips that many physical lines before parsing input.
	SkipRows int `koanf:"skiprows"`
	// Index emits a leading positional index column on output.
	Index bool `koanf:"index"`
	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}
