package ops

import (
	"strconv"

	"github.com/tabula-cli/tabula/internal/frame"
)

// Drop removes named columns (axis "columns") or positional rows (axis
// "index") from the table. Remaining rows and columns keep their relative
// order.
func Drop(t *frame.Table, labels []string, axis string) (*frame.Table, error) {
	switch axis {
	case "columns", "1":
		return dropColumns(t, labels)
	case "index", "0", "":
		return dropRows(t, labels)
	}
	return nil, frame.Errorf("Axis must be one of {index, columns}")
}

func dropColumns(t *frame.Table, labels []string) (*frame.Table, error) {
	for _, l := range labels {
		if !t.HasColumn(l) {
			return nil, frame.Errorf("No such column %s", l)
		}
	}
	df := t.Frame().Drop(labels)
	return frame.New(df)
}

func dropRows(t *frame.Table, labels []string) (*frame.Table, error) {
	drop := make(map[int]bool, len(labels))
	for _, l := range labels {
		n, err := strconv.Atoi(l)
		if err != nil {
			return nil, frame.Errorf("No such row %s", l)
		}
		if n < 0 || n >= t.Nrow() {
			return nil, frame.Errorf("No such row %d", n)
		}
		drop[n] = true
	}
	keep := make([]int, 0, t.Nrow()-len(drop))
	for i := 0; i < t.Nrow(); i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return frame.New(t.Frame().Subset(keep))
}
