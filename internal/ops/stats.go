package ops

import (
	"strconv"

	"github.com/go-gota/gota/series"
	"github.com/tabula-cli/tabula/internal/frame"
)

// reductions maps an aggregation name onto the series reduction it runs.
var reductions = map[string]func(series.Series) float64{
	"sum":    func(s series.Series) float64 { return s.Sum() },
	"mean":   func(s series.Series) float64 { return s.Mean() },
	"median": func(s series.Series) float64 { return s.Median() },
	"min":    func(s series.Series) float64 { return s.Min() },
	"max":    func(s series.Series) float64 { return s.Max() },
	"std":    func(s series.Series) float64 { return s.StdDev() },
}

// Aggregate reduces every numeric column with the named reduction,
// producing a one-row table. Non-numeric columns are left out.
func Aggregate(t *frame.Table, how string) (*frame.Table, error) {
	fn, ok := reductions[how]
	if !ok {
		return nil, frame.Errorf("How must be one of {sum, mean, median, min, max, std}")
	}

	var header, row []string
	for _, name := range t.Names() {
		if !t.IsNumeric(name) {
			continue
		}
		header = append(header, name)
		row = append(row, formatFloat(fn(t.Col(name))))
	}
	if len(header) == 0 {
		return nil, frame.Errorf("No numeric columns to aggregate")
	}
	return frame.FromRecords([][]string{header, row})
}

// Describe returns gota's summary statistics table (mean, median, quartiles,
// extrema, stddev per column).
func Describe(t *frame.Table) (*frame.Table, error) {
	return frame.New(t.Frame().Describe())
}

// formatFloat renders a float the shortest way that round-trips; whole
// numbers come out without a decimal part.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseCell parses a raw cell as a float, reporting false for missing or
// non-numeric values.
func parseCell(cell string) (float64, bool) {
	if frame.IsNA(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
