package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-cli/tabula/internal/frame"
)

func polyfitFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.FromRecords([][]string{
		{"x", "y", "label"},
		{"1", "3", "a"},
		{"2", "5", "b"},
		{"3", "7", "c"},
		{"4", "9", "d"},
		{"5", "11", "e"},
	})
	require.NoError(t, err)
	return tbl
}

func TestPolyFitLinear(t *testing.T) {
	out, err := PolyFit(polyfitFixture(t), "x", "y", 1)
	require.NoError(t, err)
	require.True(t, out.HasColumn("polyfit_1"))

	// y = 2x + 1 exactly, so the fit reproduces y.
	fitted := out.Col("polyfit_1").Float()
	want := []float64{3, 5, 7, 9, 11}
	require.Len(t, fitted, len(want))
	for i := range want {
		assert.InDelta(t, want[i], fitted[i], 1e-9)
	}
}

func TestPolyFitQuadratic(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"x", "y"},
		{"0", "1"},
		{"1", "2"},
		{"2", "5"},
		{"3", "10"},
	})
	require.NoError(t, err)

	// y = x^2 + 1.
	out, err := PolyFit(tbl, "x", "y", 2)
	require.NoError(t, err)
	fitted := out.Col("polyfit_2").Float()
	want := []float64{1, 2, 5, 10}
	for i := range want {
		assert.InDelta(t, want[i], fitted[i], 1e-9)
	}
}

func TestPolyFitSkipsMissingRows(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"x", "y"},
		{"1", "3"},
		{"2", ""},
		{"3", "7"},
		{"4", "9"},
	})
	require.NoError(t, err)

	out, err := PolyFit(tbl, "x", "y", 1)
	require.NoError(t, err)
	fitted := out.Col("polyfit_1").Float()
	// The hole is excluded from the fit but still gets a fitted value.
	assert.InDelta(t, 5.0, fitted[1], 1e-9)
}

func TestPolyFitErrors(t *testing.T) {
	tbl := polyfitFixture(t)

	_, err := PolyFit(tbl, "nope", "y", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such column nope")

	_, err = PolyFit(tbl, "x", "label", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")

	_, err = PolyFit(tbl, "x", "y", 0)
	require.Error(t, err)

	small, err := frame.FromRecords([][]string{{"x", "y"}, {"1", "2"}})
	require.NoError(t, err)
	_, err = PolyFit(small, "x", "y", 1)
	require.Error(t, err)
}
