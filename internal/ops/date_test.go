package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula-cli/tabula/internal/frame"
)

func TestParseDatesColumn(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"when", "v"},
		{"2020-01-02", "1"},
		{"2020-03-04", "2"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "when", DateOptions{})
	require.NoError(t, err)
	records := out.Records()
	assert.Equal(t, "2020-01-02", records[1][0])
	assert.Equal(t, "2020-03-04", records[2][0])
	// The other column is untouched.
	assert.Equal(t, "1", records[1][1])
}

func TestParseDatesUnitDays(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"x", "y"},
		{"3", "8"},
		{"4", "9"},
		{"5", "10"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "x", DateOptions{Unit: "D"})
	require.NoError(t, err)
	records := out.Records()
	assert.Equal(t, "1970-01-04", records[1][0])
	assert.Equal(t, "1970-01-05", records[2][0])
	assert.Equal(t, "1970-01-06", records[3][0])
}

func TestParseDatesComposesYearMonthDay(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"year", "month", "day"},
		{"2003", "3", "8"},
		{"2004", "4", "9"},
		{"2008", "8", "13"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "", DateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, out.Names())
	records := out.Records()
	assert.Equal(t, "2003-03-08", records[1][0])
	assert.Equal(t, "2004-04-09", records[2][0])
	assert.Equal(t, "2008-08-13", records[3][0])
}

func TestParseDatesDayFirst(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"dateRep"},
		{"02/03/2020"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "dateRep", DateOptions{DayFirst: true})
	require.NoError(t, err)
	assert.Equal(t, "2020-03-02", out.Records()[1][0])

	out, err = ParseDates(tbl, "dateRep", DateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2020-02-03", out.Records()[1][0])
}

func TestParseDatesNoSuchColumn(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{{"year"}, {"2003"}})
	require.NoError(t, err)

	_, err = ParseDates(tbl, "x", DateOptions{})
	require.Error(t, err)
	assert.Equal(t, "No such column x", err.Error())
}

func TestParseDatesBadErrorsEnum(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{{"year"}, {"2003"}})
	require.NoError(t, err)

	_, err = ParseDates(tbl, "year", DateOptions{Errors: "nosucherr"})
	require.Error(t, err)
	assert.True(t, len(err.Error()) > 0)
	assert.Contains(t, err.Error(), "Errors must be one of")
	assert.Equal(t, "Errors must be one of", err.Error()[:len("Errors must be one of")])
}

func TestParseDatesOutOfBounds(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"year"},
		{"0200-01-01"},
	})
	require.NoError(t, err)

	_, err = ParseDates(tbl, "year", DateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Out of bounds nanosecond timestamp")
}

func TestParseDatesCoerce(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"year", "v"},
		{"2003-01-02", "1"},
		{"notadate", "2"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "year", DateOptions{Errors: DateErrorsCoerce})
	require.NoError(t, err)
	records := out.Records()
	assert.Equal(t, "2003-01-02", records[1][0])
	assert.Equal(t, "", records[2][0])
}

func TestParseDatesIgnore(t *testing.T) {
	tbl, err := frame.FromRecords([][]string{
		{"year", "v"},
		{"2003-01-02", "1"},
		{"notadate", "2"},
	})
	require.NoError(t, err)

	out, err := ParseDates(tbl, "year", DateOptions{Errors: DateErrorsIgnore})
	require.NoError(t, err)
	records := out.Records()
	// The whole column passes through unchanged.
	assert.Equal(t, "2003-01-02", records[1][0])
	assert.Equal(t, "notadate", records[2][0])
}
