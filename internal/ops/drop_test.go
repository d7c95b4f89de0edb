package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-cli/tabula/internal/frame"
)

func dropFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.FromRecords([][]string{
		{"a", "b", "c"},
		{"1", "x", "10"},
		{"2", "y", "20"},
		{"3", "z", "30"},
	})
	require.NoError(t, err)
	return tbl
}

func TestDropColumns(t *testing.T) {
	out, err := Drop(dropFixture(t), []string{"a", "c"}, "columns")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, out.Names())
	assert.Equal(t, 3, out.Nrow())
}

func TestDropColumnMissing(t *testing.T) {
	_, err := Drop(dropFixture(t), []string{"nope"}, "columns")
	require.Error(t, err)
	assert.Equal(t, "No such column nope", err.Error())
}

func TestDropRowZero(t *testing.T) {
	tbl := dropFixture(t)
	out, err := Drop(tbl, []string{"0"}, "index")
	require.NoError(t, err)

	// Exactly one row gone, the rest in order.
	assert.Equal(t, tbl.Nrow()-1, out.Nrow())
	records := out.Records()
	assert.Equal(t, []string{"2", "y", "20"}, records[1])
	assert.Equal(t, []string{"3", "z", "30"}, records[2])
}

func TestDropRowOutOfRange(t *testing.T) {
	_, err := Drop(dropFixture(t), []string{"9"}, "index")
	require.Error(t, err)
	assert.Equal(t, "No such row 9", err.Error())
}

func TestDropBadAxis(t *testing.T) {
	_, err := Drop(dropFixture(t), []string{"a"}, "diagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Axis must be one of")
}
