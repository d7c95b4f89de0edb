package ops

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/tabula-cli/tabula/internal/frame"
)

// Merge joins two tables relationally. how is one of inner, left, right,
// outer; on defaults to the intersection of column names, in left order.
func Merge(left, right *frame.Table, how string, on []string) (*frame.Table, error) {
	if len(on) == 0 {
		for _, name := range left.Names() {
			if right.HasColumn(name) {
				on = append(on, name)
			}
		}
		if len(on) == 0 {
			return nil, frame.Errorf("No common columns to merge on")
		}
	}
	for _, key := range on {
		if !left.HasColumn(key) || !right.HasColumn(key) {
			return nil, frame.Errorf("No such column %s", key)
		}
	}

	var df dataframe.DataFrame
	switch how {
	case "inner", "":
		df = left.Frame().InnerJoin(right.Frame(), on...)
	case "left":
		df = left.Frame().LeftJoin(right.Frame(), on...)
	case "right":
		df = left.Frame().RightJoin(right.Frame(), on...)
	case "outer":
		df = left.Frame().OuterJoin(right.Frame(), on...)
	default:
		return nil, frame.Errorf("How must be one of {inner, left, right, outer}, got %s", how)
	}
	return frame.New(df)
}

// SplitOn turns a comma-separated --on value into key names.
func SplitOn(on string) []string {
	if on == "" {
		return nil
	}
	parts := strings.Split(on, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
