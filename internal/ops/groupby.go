package ops

import (
	"math"
	"sort"

	"github.com/tabula-cli/tabula/internal/frame"
)

// groupAggs is the aggregation set groupby accepts. sum..std reduce numeric
// columns; count and first apply to every non-key column.
var groupAggs = map[string]bool{
	"sum": true, "mean": true, "median": true, "min": true, "max": true,
	"std": true, "count": true, "first": true,
}

// GroupBy groups rows by the values of col and aggregates the remaining
// columns with the named reduction. Group keys are emitted in sorted order.
// With asIndex the key column becomes the index and is not part of the
// output; otherwise it is the first output column.
//
// gota's own GroupBy aggregation iterates a map and does not keep a stable
// group order, so the grouping runs over the raw records here.
func GroupBy(t *frame.Table, col, how string, asIndex bool) (*frame.Table, error) {
	if !t.HasColumn(col) {
		return nil, frame.Errorf("No such column %s", col)
	}
	if !groupAggs[how] {
		return nil, frame.Errorf("How must be one of {sum, mean, median, min, max, std, count, first}")
	}

	names := t.Names()
	keyIdx := 0
	for i, n := range names {
		if n == col {
			keyIdx = i
		}
	}

	// Column indexes taking part in the aggregation.
	var valueIdx []int
	for i, n := range names {
		if i == keyIdx {
			continue
		}
		if how == "count" || how == "first" || t.IsNumeric(n) {
			valueIdx = append(valueIdx, i)
		}
	}
	if len(valueIdx) == 0 {
		return nil, frame.Errorf("No columns to aggregate")
	}

	records := t.Records()
	groups := make(map[string][][]string)
	var keys []string
	for _, rec := range records[1:] {
		k := rec[keyIdx]
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], rec)
	}
	sort.Strings(keys)

	header := []string{}
	if !asIndex {
		header = append(header, col)
	}
	for _, i := range valueIdx {
		header = append(header, names[i])
	}

	out := [][]string{header}
	for _, k := range keys {
		row := []string{}
		if !asIndex {
			row = append(row, k)
		}
		for _, i := range valueIdx {
			row = append(row, aggregateCells(groups[k], i, how))
		}
		out = append(out, row)
	}
	return frame.FromRecords(out)
}

func aggregateCells(rows [][]string, col int, how string) string {
	switch how {
	case "first":
		for _, rec := range rows {
			if !frame.IsNA(rec[col]) {
				return rec[col]
			}
		}
		return ""
	case "count":
		n := 0
		for _, rec := range rows {
			if !frame.IsNA(rec[col]) {
				n++
			}
		}
		return formatFloat(float64(n))
	}

	var vals []float64
	for _, rec := range rows {
		if v, ok := parseCell(rec[col]); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return ""
	}
	return formatFloat(reduce(vals, how))
}

func reduce(vals []float64, how string) float64 {
	switch how {
	case "sum":
		total := 0.0
		for _, v := range vals {
			total += v
		}
		return total
	case "mean":
		return reduce(vals, "sum") / float64(len(vals))
	case "median":
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2
		}
		return sorted[mid]
	case "min":
		m := vals[0]
		for _, v := range vals[1:] {
			m = math.Min(m, v)
		}
		return m
	case "max":
		m := vals[0]
		for _, v := range vals[1:] {
			m = math.Max(m, v)
		}
		return m
	case "std":
		if len(vals) < 2 {
			return math.NaN()
		}
		mean := reduce(vals, "mean")
		ss := 0.0
		for _, v := range vals {
			ss += (v - mean) * (v - mean)
		}
		return math.Sqrt(ss / float64(len(vals)-1))
	}
	return math.NaN()
}
