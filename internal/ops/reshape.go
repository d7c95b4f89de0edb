package ops

import (
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/tabula-cli/tabula/internal/frame"
)

// Transpose flips rows and columns. The output header is the original row
// index; original column names are dropped, matching positional output.
func Transpose(t *frame.Table) (*frame.Table, error) {
	records := t.Records()
	nrow := len(records) - 1
	ncol := len(records[0])

	out := make([][]string, ncol+1)
	header := make([]string, nrow)
	for i := 0; i < nrow; i++ {
		header[i] = strconv.Itoa(i)
	}
	out[0] = header
	for c := 0; c < ncol; c++ {
		row := make([]string, nrow)
		for r := 0; r < nrow; r++ {
			row[r] = records[r+1][c]
		}
		out[c+1] = row
	}
	return frame.FromRecords(out)
}

// ColumnNames returns a one-column table listing the header names.
func ColumnNames(t *frame.Table) (*frame.Table, error) {
	out := [][]string{{"columns"}}
	for _, name := range t.Names() {
		out = append(out, []string{name})
	}
	return frame.FromRecords(out)
}

// Shape returns a one-row table with the row and column counts.
func Shape(t *frame.Table) (*frame.Table, error) {
	return frame.FromRecords([][]string{
		{"rows", "columns"},
		{strconv.Itoa(t.Nrow()), strconv.Itoa(t.Ncol())},
	})
}

// Index prepends a 0-based positional index column.
func Index(t *frame.Table) (*frame.Table, error) {
	records := t.Records()
	out := make([][]string, len(records))
	out[0] = append([]string{"index"}, records[0]...)
	for i, rec := range records[1:] {
		out[i+1] = append([]string{strconv.Itoa(i)}, rec...)
	}
	return frame.FromRecords(out)
}

// Head keeps the first n rows.
func Head(t *frame.Table, n int) (*frame.Table, error) {
	if n < 0 {
		return nil, frame.Errorf("Head needs a non-negative row count, got %d", n)
	}
	if n > t.Nrow() {
		n = t.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return frame.New(t.Frame().Subset(idx))
}

// Tail keeps the last n rows.
func Tail(t *frame.Table, n int) (*frame.Table, error) {
	if n < 0 {
		return nil, frame.Errorf("Tail needs a non-negative row count, got %d", n)
	}
	if n > t.Nrow() {
		n = t.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = t.Nrow() - n + i
	}
	return frame.New(t.Frame().Subset(idx))
}

// SortBy stably sorts rows by the named column.
func SortBy(t *frame.Table, col string, descending bool) (*frame.Table, error) {
	if !t.HasColumn(col) {
		return nil, frame.Errorf("No such column %s", col)
	}
	order := dataframe.Sort(col)
	if descending {
		order = dataframe.RevSort(col)
	}
	return frame.New(t.Frame().Arrange(order))
}

// Concat combines tables row-wise (axis "index": union of columns, missing
// cells blank) or column-wise (axis "columns": shorter tables padded with
// blank rows).
func Concat(tables []*frame.Table, axis string) (*frame.Table, error) {
	if len(tables) == 0 {
		return nil, frame.Errorf("Nothing to concatenate")
	}
	switch axis {
	case "index", "0", "":
		return concatRows(tables)
	case "columns", "1":
		return concatColumns(tables)
	}
	return nil, frame.Errorf("Axis must be one of {index, columns}")
}

func concatRows(tables []*frame.Table) (*frame.Table, error) {
	df := tables[0].Frame()
	for _, t := range tables[1:] {
		df = df.Concat(t.Frame())
	}
	return frame.New(df)
}

func concatColumns(tables []*frame.Table) (*frame.Table, error) {
	maxRows := 0
	for _, t := range tables {
		if t.Nrow() > maxRows {
			maxRows = t.Nrow()
		}
	}

	var out [][]string
	for _, t := range tables {
		records := t.Records()
		width := len(records[0])
		if out == nil {
			out = make([][]string, maxRows+1)
			for i := range out {
				out[i] = []string{}
			}
		}
		for r := 0; r <= maxRows; r++ {
			if r < len(records) {
				out[r] = append(out[r], records[r]...)
				continue
			}
			for c := 0; c < width; c++ {
				out[r] = append(out[r], "")
			}
		}
	}
	return frame.FromRecords(out)
}
