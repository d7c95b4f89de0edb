// Package frame wraps the gota dataframe with the Table type used by every
// tabula command, plus the adapters that move tables in and out of the
// process: CSV/TSV readers and writers with separator, decimal-mark,
// thousands-mark and skip-rows handling, and the platform clipboard.
package frame

import (
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Missing-value markers recognised in input cells.
var naMarkers = map[string]bool{
	"":     true,
	"NaN":  true,
	"nan":  true,
	"NA":   true,
	"null": true,
}

// IsNA reports whether a raw cell value counts as missing.
func IsNA(cell string) bool {
	return naMarkers[cell]
}

// Table is an ordered sequence of named columns with a positional row index.
// All columns share the same row count. A Table is built once per invocation,
// transformed by exactly one handler, and serialized once.
type Table struct {
	df dataframe.DataFrame
}

// New wraps a gota dataframe, surfacing any deferred construction error.
func New(df dataframe.DataFrame) (*Table, error) {
	if err := df.Error(); err != nil {
		return nil, Errorf("%v", err)
	}
	return &Table{df: df}, nil
}

// FromRecords builds a Table from records where the first row is the header.
// Column types are detected from the values.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, Errorf("Empty input")
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	return New(df)
}

// Frame returns the underlying dataframe.
func (t *Table) Frame() dataframe.DataFrame {
	return t.df
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return t.df.Names()
}

// Nrow returns the number of data rows.
func (t *Table) Nrow() int {
	return t.df.Nrow()
}

// Ncol returns the number of columns.
func (t *Table) Ncol() int {
	return t.df.Ncol()
}

// Records returns the table as string records, header row first. Float
// cells are rendered the shortest way that round-trips (gota pads them to
// six decimals, which would leak into the output as 5.500000).
func (t *Table) Records() [][]string {
	records := t.df.Records()
	types := t.df.Types()
	for _, rec := range records[1:] {
		for j, cell := range rec {
			if j >= len(types) || types[j] != series.Float || cell == "NaN" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec[j] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
	}
	return records
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Col returns the named column series. The caller must check HasColumn
// first; gota returns an error series for unknown names.
func (t *Table) Col(name string) series.Series {
	return t.df.Col(name)
}

// IsNumeric reports whether the named column holds int or float values.
func (t *Table) IsNumeric(name string) bool {
	switch t.df.Col(name).Type() {
	case series.Int, series.Float:
		return true
	}
	return false
}
