package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/series"
)

// WriteOptions control how a Table is serialized.
type WriteOptions struct {
	// Separator is the output field delimiter, "," by default. The same
	// escaped spellings as ReadOptions.Separator are accepted.
	Separator string
	// Index emits a leading 0-based "index" column.
	Index bool
}

// DefaultWriteOptions returns the options used when a command gives none.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Separator: ","}
}

func (o WriteOptions) delimiter() (rune, error) {
	return ReadOptions{Separator: o.Separator}.delimiter()
}

// Write serializes a Table as delimited text: stable column order, one
// header row, no trailing whitespace. Missing numeric cells are written
// empty.
func Write(t *Table, w io.Writer, opts WriteOptions) error {
	delim, err := opts.delimiter()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = delim

	records := t.Records()
	types := t.Frame().Types()

	for i, rec := range records {
		out := rec
		if i > 0 {
			out = cleanRow(rec, types)
		}
		if opts.Index {
			if i == 0 {
				out = append([]string{"index"}, out...)
			} else {
				out = append([]string{strconv.Itoa(i - 1)}, out...)
			}
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile serializes a Table to a named file.
func WriteFile(t *Table, path string, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return Errorf("Could not create %s", path)
	}
	defer f.Close()
	if err := Write(t, f, opts); err != nil {
		return err
	}
	return f.Close()
}

// cleanRow blanks the NaN placeholders gota renders for missing numeric
// cells; string columns keep their values untouched.
func cleanRow(rec []string, types []series.Type) []string {
	out := make([]string, len(rec))
	for i, cell := range rec {
		if i < len(types) && cell == "NaN" {
			switch types[i] {
			case series.Int, series.Float:
				cell = ""
			}
		}
		out[i] = cell
	}
	return out
}
