package curve

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeSingleValue(t *testing.T) {
	rows, err := ParseRows([]byte(`[
		{"Date": "2024-01-01", "Value": 100},
		{"Date": "2024-01-02", "Value": 105},
		{"Date": "2024-01-03", "Value": 95}
	]`))
	require.Nil(t, err)

	ps, err := Normalize(SingleValueMode{SeriesName: "Portfolio"}, rows)
	require.Nil(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, DataPoint{At: day(1), Name: "Portfolio", Value: 100}, ps[0])
	assert.Equal(t, DataPoint{At: day(2), Name: "Portfolio", Value: 105}, ps[1])
	assert.Equal(t, DataPoint{At: day(3), Name: "Portfolio", Value: 95}, ps[2])
}

func TestNormalizeSingleValueCustomKeys(t *testing.T) {
	rows := []Row{
		{{Key: "ts", Value: day(5)}, {Key: "ret", Value: "0.25"}},
	}

	ps, err := Normalize(SingleValueMode{DateKey: "ts", ValueKey: "ret", SeriesName: "r"}, rows)
	assert.Nil(t, err)
	assert.Equal(t, []DataPoint{{At: day(5), Name: "r", Value: 0.25}}, ps)
}

func TestNormalizeMultiValueColumnOrder(t *testing.T) {
	rows, err := ParseRows([]byte(`[
		{"Date": "2024-01-01", "MSFT": 10, "AAPL": 20.5},
		{"MSFT": 11, "Date": "2024-01-02", "AAPL": 21}
	]`))
	require.Nil(t, err)

	ps, err := Normalize(MultiValueMode{}, rows)
	require.Nil(t, err)

	assert.Equal(t, []DataPoint{
		{At: day(1), Name: "MSFT", Value: 10},
		{At: day(1), Name: "AAPL", Value: 20.5},
		{At: day(2), Name: "MSFT", Value: 11},
		{At: day(2), Name: "AAPL", Value: 21},
	}, ps)
}

func TestNormalizeMultiValueExplicitColumns(t *testing.T) {
	rows := []Row{
		RowFromMap(map[string]any{"Date": "2024-01-01", "A": 1, "B": 2, "C": 3}),
	}

	ps, err := Normalize(MultiValueMode{Columns: []string{"C", "A"}}, rows)
	assert.Nil(t, err)
	assert.Equal(t, []DataPoint{
		{At: day(1), Name: "C", Value: 3},
		{At: day(1), Name: "A", Value: 1},
	}, ps)

	_, err = Normalize(MultiValueMode{Columns: []string{"D"}}, rows)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestNormalizeEpochMillis(t *testing.T) {
	rows := []Row{
		{{Key: "Date", Value: day(2).UnixMilli()}, {Key: "Value", Value: 1}},
	}

	ps, err := Normalize(SingleValueMode{}, rows)
	assert.Nil(t, err)
	assert.True(t, ps[0].At.Equal(day(2)))
}

func TestToInstantRange(t *testing.T) {
	_, err := ToInstant(1e20)
	assert.NotNil(t, err)

	_, err = ToInstant(-1e20)
	assert.NotNil(t, err)

	at, err := ToInstant(float64(day(3).UnixMilli()))
	assert.Nil(t, err)
	assert.True(t, at.Equal(day(3)))
}

func TestNormalizeMalformed(t *testing.T) {
	cases := map[string]Row{
		"bad date":     {{Key: "Date", Value: "not a date"}, {Key: "Value", Value: 1}},
		"missing date": {{Key: "Value", Value: 1}},
		"null date":    {{Key: "Date", Value: nil}, {Key: "Value", Value: 1}},
		"bool date":    {{Key: "Date", Value: true}, {Key: "Value", Value: 1}},
		"huge epoch":   {{Key: "Date", Value: 1e20}, {Key: "Value", Value: 1}},
		"inf epoch":    {{Key: "Date", Value: math.Inf(-1)}, {Key: "Value", Value: 1}},
		"null value":   {{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: nil}},
		"text value":   {{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: "abc"}},
		"nan value":    {{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: math.NaN()}},
		"inf value":    {{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: math.Inf(1)}},
		"no value":     {{Key: "Date", Value: "2024-01-01"}},
	}

	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			ps, err := Normalize(SingleValueMode{}, []Row{
				{{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: 1}},
				row,
			})
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), "row 1")
			assert.Nil(t, ps)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	ps, err := Normalize(MultiValueMode{}, nil)
	assert.Nil(t, err)
	assert.Empty(t, ps)

	ps, err = Normalize(nil, nil)
	assert.Nil(t, err)
	assert.Empty(t, ps)
}
