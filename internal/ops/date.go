package ops

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tabula-cli/tabula/internal/frame"
)

// Error modes for date parsing.
const (
	DateErrorsRaise  = "raise"
	DateErrorsCoerce = "coerce"
	DateErrorsIgnore = "ignore"
)

// Timestamps are bounded to the nanosecond-representable year range;
// anything outside raises as out of bounds.
const (
	minTimestampYear = 1677
	maxTimestampYear = 2262
)

// DateOptions control column-to-date coercion.
type DateOptions struct {
	// Unit interprets numeric cells as counts since the epoch; "D" for days
	// is the only supported unit.
	Unit string
	// DayFirst prefers day-month ordering for ambiguous dates like 03/04/05.
	DayFirst bool
	// Errors is one of raise, coerce, ignore.
	Errors string
}

// ParseDates coerces a column (or, with col unset, the whole table) into
// dates. With no column named, a table carrying year/month/day columns is
// composed into one date column named "0"; otherwise every column is parsed
// in place.
func ParseDates(t *frame.Table, col string, opts DateOptions) (*frame.Table, error) {
	switch opts.Errors {
	case "", DateErrorsRaise:
		opts.Errors = DateErrorsRaise
	case DateErrorsCoerce, DateErrorsIgnore:
	default:
		return nil, frame.Errorf("Errors must be one of {%s, %s, %s}, got %s",
			DateErrorsRaise, DateErrorsCoerce, DateErrorsIgnore, opts.Errors)
	}
	if opts.Unit != "" && opts.Unit != "D" {
		return nil, frame.Errorf("Unit must be D, got %s", opts.Unit)
	}

	records := t.Records()
	if col == "" {
		if composed, ok, err := composeDates(t); ok || err != nil {
			return composed, err
		}
		out := cloneRecords(records)
		for c := range records[0] {
			if err := parseColumn(out, c, opts); err != nil {
				return nil, err
			}
		}
		return frame.FromRecords(out)
	}

	if !t.HasColumn(col) {
		return nil, frame.Errorf("No such column %s", col)
	}
	idx := columnIndex(records[0], col)
	out := cloneRecords(records)
	if err := parseColumn(out, idx, opts); err != nil {
		return nil, err
	}
	return frame.FromRecords(out)
}

// composeDates assembles year/month/day columns into a single date column
// named "0", mirroring whole-table datetime conversion.
func composeDates(t *frame.Table) (*frame.Table, bool, error) {
	for _, need := range []string{"year", "month", "day"} {
		if !t.HasColumn(need) {
			return nil, false, nil
		}
	}
	records := t.Records()
	yi := columnIndex(records[0], "year")
	mi := columnIndex(records[0], "month")
	di := columnIndex(records[0], "day")

	out := [][]string{{"0"}}
	for _, rec := range records[1:] {
		y, yok := parseCell(rec[yi])
		m, mok := parseCell(rec[mi])
		d, dok := parseCell(rec[di])
		if !yok || !mok || !dok {
			return nil, true, frame.Errorf("Could not assemble date from year=%s month=%s day=%s",
				rec[yi], rec[mi], rec[di])
		}
		ts := time.Date(int(y), time.Month(int(m)), int(d), 0, 0, 0, 0, time.UTC)
		out = append(out, []string{formatDate(ts)})
	}
	composed, err := frame.FromRecords(out)
	return composed, true, err
}

func parseColumn(records [][]string, col int, opts DateOptions) error {
	parsed := make([]time.Time, 0, len(records)-1)
	valid := make([]bool, 0, len(records)-1)
	for _, rec := range records[1:] {
		cell := rec[col]
		if frame.IsNA(cell) {
			parsed = append(parsed, time.Time{})
			valid = append(valid, false)
			continue
		}
		ts, err := parseDateCell(cell, opts)
		if err != nil {
			switch opts.Errors {
			case DateErrorsCoerce:
				parsed = append(parsed, time.Time{})
				valid = append(valid, false)
				continue
			case DateErrorsIgnore:
				// One unparseable value leaves the whole column untouched.
				return nil
			}
			return err
		}
		parsed = append(parsed, ts)
		valid = append(valid, true)
	}

	dateOnly := true
	for i, ts := range parsed {
		if !valid[i] {
			continue
		}
		h, m, s := ts.Clock()
		if h != 0 || m != 0 || s != 0 {
			dateOnly = false
			break
		}
	}
	for i := range parsed {
		cell := ""
		if valid[i] {
			if dateOnly {
				cell = parsed[i].Format("2006-01-02")
			} else {
				cell = parsed[i].Format("2006-01-02 15:04:05")
			}
		}
		records[i+1][col] = cell
	}
	return nil
}

func parseDateCell(cell string, opts DateOptions) (time.Time, error) {
	var ts time.Time
	if opts.Unit == "D" {
		days, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return time.Time{}, frame.Errorf("Could not parse %s as days since epoch", cell)
		}
		ts = time.Unix(0, 0).UTC().Add(time.Duration(days*24) * time.Hour)
	} else {
		var err error
		ts, err = dateparse.ParseAny(cell, dateparse.PreferMonthFirst(!opts.DayFirst))
		if err != nil {
			return time.Time{}, frame.Errorf("Could not parse %s as date", cell)
		}
	}
	if y := ts.Year(); y < minTimestampYear || y > maxTimestampYear {
		return time.Time{}, frame.Errorf("Out of bounds nanosecond timestamp: %s", cell)
	}
	return ts, nil
}

func formatDate(ts time.Time) string {
	return ts.Format("2006-01-02")
}

func columnIndex(header []string, name string) int {
	for i, n := range header {
		if n == name {
			return i
		}
	}
	return -1
}

func cloneRecords(records [][]string) [][]string {
	out := make([][]string, len(records))
	for i, rec := range records {
		out[i] = append([]string(nil), rec...)
	}
	return out
}
