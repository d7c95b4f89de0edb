package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadOptions control how delimited input becomes a Table.
type ReadOptions struct {
	// Separator is the field delimiter. The escaped forms `\t` (two
	// characters) and "tab" normalize to an actual tab.
	Separator string
	// Decimal is the decimal mark used in numeric cells, "." by default.
	Decimal string
	// Thousands is the grouping mark stripped from numeric cells, none by
	// default.
	Thousands string
	// SkipRows skips that many physical lines before parsing starts.
	SkipRows int
	// NoHeader synthesizes positional column names 0..n-1 instead of
	// consuming the first record as the header.
	NoHeader bool
}

// DefaultReadOptions returns the options used when a command gives none.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Separator: ",", Decimal: "."}
}

// NormalizeSeparator resolves the user-facing separator spelling to the
// literal delimiter string.
func NormalizeSeparator(sep string) string {
	switch sep {
	case "", "csv":
		return ","
	case `\t`, "tab", "tsv":
		return "\t"
	}
	return sep
}

func (o ReadOptions) delimiter() (rune, error) {
	sep := NormalizeSeparator(o.Separator)
	r, size := utf8.DecodeRuneInString(sep)
	if size == 0 || size != len(sep) {
		return 0, Errorf("Separator must be a single character, got %q", o.Separator)
	}
	return r, nil
}

// Read parses delimited text from r into a Table.
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return parse(string(data), opts)
}

// ReadFile parses a named delimited file into a Table.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Errorf("Could not open %s", path)
	}
	defer f.Close()
	return Read(f, opts)
}

func parse(data string, opts ReadOptions) (*Table, error) {
	delim, err := opts.delimiter()
	if err != nil {
		return nil, err
	}

	for i := 0; i < opts.SkipRows; i++ {
		nl := strings.IndexByte(data, '\n')
		if nl < 0 {
			return nil, Errorf("Too few rows to skip %d", opts.SkipRows)
		}
		data = data[nl+1:]
	}

	cr := csv.NewReader(strings.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, Errorf("Could not parse input: %v", err)
	}
	if len(records) == 0 {
		return nil, Errorf("Empty input")
	}

	normalizeNumbers(records, opts)
	padRecords(records)

	if opts.NoHeader {
		header := make([]string, len(records[0]))
		for i := range header {
			header[i] = strconv.Itoa(i)
		}
		records = append([][]string{header}, records...)
	}

	return FromRecords(records)
}

// padRecords makes every record as wide as the widest one so the loaded
// columns share a row count; short rows are padded with missing cells.
func padRecords(records [][]string) {
	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	for i, rec := range records {
		for len(rec) < width {
			rec = append(rec, "")
		}
		records[i] = rec
	}
}

// normalizeNumbers rewrites numeric-looking cells that use a non-default
// decimal mark or a thousands mark into canonical form, so type detection
// sees plain floats. Cells that do not parse after rewriting are kept as-is.
func normalizeNumbers(records [][]string, opts ReadOptions) {
	if opts.Thousands == "" && (opts.Decimal == "" || opts.Decimal == ".") {
		return
	}
	for i, rec := range records {
		if i == 0 && !opts.NoHeader {
			continue
		}
		for j, cell := range rec {
			if v, ok := normalizeNumber(cell, opts.Decimal, opts.Thousands); ok {
				rec[j] = v
			}
		}
	}
}

func normalizeNumber(cell, decimal, thousands string) (string, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", false
	}
	if thousands != "" {
		s = strings.ReplaceAll(s, thousands, "")
	}
	if decimal != "" && decimal != "." {
		if strings.Contains(s, ".") {
			// A canonical dot next to a custom decimal mark means the cell
			// was not numeric under these marks.
			return "", false
		}
		s = strings.Replace(s, decimal, ".", 1)
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", false
	}
	return s, true
}
