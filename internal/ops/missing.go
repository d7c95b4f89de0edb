package ops

import (
	"github.com/tabula-cli/tabula/internal/frame"
)

// DropNAOptions control missing-value row/column removal.
type DropNAOptions struct {
	// Axis 0 drops rows, 1 drops columns.
	Axis int
	// How is "any" (default) or "all": drop when any cell is missing, or
	// only when every cell is.
	How string
	// Thresh, when positive, keeps rows/columns holding at least that many
	// non-missing cells; it overrides How.
	Thresh int
}

// DropNA removes rows or columns containing missing values.
func DropNA(t *frame.Table, opts DropNAOptions) (*frame.Table, error) {
	switch opts.How {
	case "", "any", "all":
	default:
		return nil, frame.Errorf("How must be one of {any, all}, got %s", opts.How)
	}
	switch opts.Axis {
	case 0:
		return dropNARows(t, opts)
	case 1:
		return dropNAColumns(t, opts)
	}
	return nil, frame.Errorf("Axis must be 0 or 1, got %d", opts.Axis)
}

func keepLine(cells []string, opts DropNAOptions) bool {
	present := 0
	for _, c := range cells {
		if !frame.IsNA(c) {
			present++
		}
	}
	if opts.Thresh > 0 {
		return present >= opts.Thresh
	}
	if opts.How == "all" {
		return present > 0
	}
	return present == len(cells)
}

func dropNARows(t *frame.Table, opts DropNAOptions) (*frame.Table, error) {
	records := t.Records()
	out := [][]string{records[0]}
	for _, rec := range records[1:] {
		if keepLine(rec, opts) {
			out = append(out, rec)
		}
	}
	return frame.FromRecords(out)
}

func dropNAColumns(t *frame.Table, opts DropNAOptions) (*frame.Table, error) {
	records := t.Records()
	var keep []int
	for c := range records[0] {
		col := make([]string, 0, len(records)-1)
		for _, rec := range records[1:] {
			col = append(col, rec[c])
		}
		if keepLine(col, opts) {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 {
		return nil, frame.Errorf("All columns dropped")
	}
	out := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(keep))
		for j, c := range keep {
			row[j] = rec[c]
		}
		out[i] = row
	}
	return frame.FromRecords(out)
}

// FillNAOptions control missing-value replacement.
type FillNAOptions struct {
	// Value fills missing cells with a literal value; ignored when Method
	// is set.
	Value string
	// Method "pad" forward-fills from the previous non-missing cell in the
	// column.
	Method string
	// Limit caps the number of fills per column, 0 for no cap.
	Limit int
}

// FillNA replaces missing cells with a value or by forward-fill.
func FillNA(t *frame.Table, opts FillNAOptions) (*frame.Table, error) {
	switch opts.Method {
	case "", "pad", "ffill":
	default:
		return nil, frame.Errorf("Method must be one of {pad, ffill}, got %s", opts.Method)
	}
	if opts.Method == "" && opts.Value == "" {
		return nil, frame.Errorf("Fillna needs a value or a method")
	}

	records := cloneRecords(t.Records())
	for c := range records[0] {
		filled := 0
		last := ""
		haveLast := false
		for _, rec := range records[1:] {
			if !frame.IsNA(rec[c]) {
				last, haveLast = rec[c], true
				if opts.Method != "" {
					// The fill cap applies per run of consecutive
					// missing cells when forward-filling.
					filled = 0
				}
				continue
			}
			if opts.Limit > 0 && filled >= opts.Limit {
				continue
			}
			if opts.Method != "" {
				if !haveLast {
					continue
				}
				rec[c] = last
			} else {
				rec[c] = opts.Value
			}
			filled++
		}
	}
	return frame.FromRecords(records)
}
