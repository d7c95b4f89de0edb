package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-cli/tabula/internal/frame"
)

func statsFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.FromRecords([][]string{
		{"x", "y", "label"},
		{"3", "8", "a"},
		{"4", "9", "b"},
		{"5", "10", "c"},
		{"6", "11", "d"},
		{"7", "12", "e"},
		{"8", "13", "f"},
	})
	require.NoError(t, err)
	return tbl
}

func TestAggregateMedian(t *testing.T) {
	out, err := Aggregate(statsFixture(t), "median")
	require.NoError(t, err)

	records := out.Records()
	require.Len(t, records, 2)
	assert.Equal(t, []string{"x", "y"}, records[0])
	assert.Equal(t, []string{"5.5", "10.5"}, records[1])
}

func TestAggregateSum(t *testing.T) {
	out, err := Aggregate(statsFixture(t), "sum")
	require.NoError(t, err)
	assert.Equal(t, []string{"33", "63"}, out.Records()[1])
}

func TestAggregateMinMax(t *testing.T) {
	out, err := Aggregate(statsFixture(t), "min")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "8"}, out.Records()[1])

	out, err = Aggregate(statsFixture(t), "max")
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "13"}, out.Records()[1])
}

func TestAggregateUnknown(t *testing.T) {
	_, err := Aggregate(statsFixture(t), "mode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "How must be one of")
}

func TestAggregateNoNumericColumns(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{{"s"}, {"a"}, {"b"}})
	require.NoError(t, err)

	_, err = Aggregate(tbl, "sum")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := Describe(statsFixture(t))
	require.NoError(t, err)

	// One descriptor column plus the described columns, and the stat rows.
	assert.GreaterOrEqual(t, out.Ncol(), 2)
	assert.Greater(t, out.Nrow(), 3)
}
