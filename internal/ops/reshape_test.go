package ops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-cli/tabula/internal/frame"
)

func reshapeFixture(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.FromRecords([][]string{
		{"x", "y"},
		{"3", "8"},
		{"4", "9"},
		{"5", "10"},
		{"6", "11"},
		{"7", "12"},
		{"8", "13"},
	})
	require.NoError(t, err)
	return tbl
}

func TestTranspose(t *testing.T) {
	out, err := Transpose(reshapeFixture(t))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, frame.Write(out, &sb, frame.DefaultWriteOptions()))
	assert.Equal(t, "0,1,2,3,4,5\n3,4,5,6,7,8\n8,9,10,11,12,13\n", sb.String())
}

func TestColumnNames(t *testing.T) {
	out, err := ColumnNames(reshapeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"columns"}, out.Names())
	records := out.Records()
	assert.Equal(t, "x", records[1][0])
	assert.Equal(t, "y", records[2][0])
}

func TestShape(t *testing.T) {
	out, err := Shape(reshapeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"rows", "columns"}, out.Names())
	assert.Equal(t, []string{"6", "2"}, out.Records()[1])
}

func TestIndex(t *testing.T) {
	out, err := Index(reshapeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "x", "y"}, out.Names())
	assert.Equal(t, "0", out.Records()[1][0])
	assert.Equal(t, "5", out.Records()[6][0])
}

func TestHeadTail(t *testing.T) {
	tbl := reshapeFixture(t)

	out, err := Head(tbl, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Nrow())
	assert.Equal(t, []string{"3", "8"}, out.Records()[1])

	out, err = Tail(tbl, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Nrow())
	records := out.Records()
	assert.Equal(t, []string{"6", "11"}, records[1])
	assert.Equal(t, []string{"8", "13"}, records[3])
}

func TestHeadPastEnd(t *testing.T) {
	out, err := Head(reshapeFixture(t), 100)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Nrow())
}

func TestSortBy(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"v", "tag"},
		{"30", "c"},
		{"10", "a"},
		{"20", "b"},
	})
	require.NoError(t, err)

	out, err := SortBy(tbl, "v", false)
	require.NoError(t, err)
	records := out.Records()
	assert.Equal(t, []string{"10", "a"}, records[1])
	assert.Equal(t, []string{"30", "c"}, records[3])

	out, err = SortBy(tbl, "v", true)
	require.NoError(t, err)
	assert.Equal(t, "30", out.Records()[1][0])

	_, err = SortBy(tbl, "nope", false)
	require.Error(t, err)
	assert.Equal(t, "No such column nope", err.Error())
}

func TestConcatRows(t *testing.T) {
	a, err := frame.FromRecords([][]string{{"x", "y"}, {"1", "2"}})
	require.NoError(t, err)
	b, err := frame.FromRecords([][]string{{"x", "y"}, {"3", "4"}, {"5", "6"}})
	require.NoError(t, err)

	out, err := Concat([]*frame.Table{a, b}, "index")
	require.NoError(t, err)
	assert.Equal(t, 3, out.Nrow())
	assert.Equal(t, 2, out.Ncol())
}

func TestConcatColumnsPadsShortTables(t *testing.T) {
	a, err := frame.FromRecords([][]string{{"x"}, {"1"}})
	require.NoError(t, err)
	b, err := frame.FromRecords([][]string{{"y"}, {"3"}, {"5"}})
	require.NoError(t, err)

	out, err := Concat([]*frame.Table{a, b}, "columns")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Nrow())
	assert.Equal(t, 2, out.Ncol())
}

func TestConcatBadAxis(t *testing.T) {
	a, err := frame.FromRecords([][]string{{"x"}, {"1"}})
	require.NoError(t, err)
	_, err = Concat([]*frame.Table{a}, "diagonal")
	require.Error(t, err)
}
