package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

const (
	DefaultDateKey  = "Date"
	DefaultValueKey = "Value"
)

// InputMode selects how rows are turned into data points. The implementations
// are SingleValueMode and MultiValueMode.
type InputMode interface {
	normalize(rows []Row) ([]DataPoint, error)
}

// SingleValueMode reads rows shaped {Date, Value} into one series.
type SingleValueMode struct {
	DateKey    string
	ValueKey   string
	SeriesName string
}

// MultiValueMode reads rows shaped {Date, col1, col2, ...} into one series per
// column. With Columns set only those columns are read, in that order.
type MultiValueMode struct {
	DateKey string
	Columns []string
}

func Normalize(mode InputMode, rows []Row) ([]DataPoint, error) {
	if mode == nil {
		mode = SingleValueMode{}
	}

	ps, err := mode.normalize(rows)
	if err != nil {
		return nil, err
	}

	return ps, nil
}

func (mode SingleValueMode) normalize(rows []Row) (ps []DataPoint, err error) {
	dateKey := keyOr(mode.DateKey, DefaultDateKey)
	valueKey := keyOr(mode.ValueKey, DefaultValueKey)

	ps = make([]DataPoint, 0, len(rows))

	for idx, row := range rows {
		at, e := rowInstant(row, dateKey)
		if e != nil {
			err = fmt.Errorf("row %d: %w", idx, e)

			return
		}

		raw, ok := row.Get(valueKey)
		if !ok {
			err = fmt.Errorf("row %d: %w: no %q field", idx, ErrMalformedRecord, valueKey)

			return
		}

		v, e := toValue(raw)
		if e != nil {
			err = fmt.Errorf("row %d: %w: %q: %v", idx, ErrMalformedRecord, valueKey, e)

			return
		}

		ps = append(ps, DataPoint{At: at, Name: mode.SeriesName, Value: v})
	}

	return
}

func (mode MultiValueMode) normalize(rows []Row) (ps []DataPoint, err error) {
	dateKey := keyOr(mode.DateKey, DefaultDateKey)

	for idx, row := range rows {
		at, e := rowInstant(row, dateKey)
		if e != nil {
			err = fmt.Errorf("row %d: %w", idx, e)

			return
		}

		fields := mode.columns(row, dateKey)

		for _, f := range fields {
			v, e := toValue(f.Value)
			if e != nil {
				err = fmt.Errorf("row %d: %w: %q: %v", idx, ErrMalformedRecord, f.Key, e)

				return
			}

			ps = append(ps, DataPoint{At: at, Name: f.Key, Value: v})
		}
	}

	return
}

func (mode MultiValueMode) columns(row Row, dateKey string) []Field {
	if len(mode.Columns) == 0 {
		fields := make([]Field, 0, len(row))

		for _, f := range row {
			if f.Key != dateKey {
				fields = append(fields, f)
			}
		}

		return fields
	}

	fields := make([]Field, 0, len(mode.Columns))

	for _, c := range mode.Columns {
		v, _ := row.Get(c)
		fields = append(fields, Field{Key: c, Value: v})
	}

	return fields
}

func keyOr(key, def string) string {
	if key == "" {
		return def
	}

	return key
}

func rowInstant(row Row, dateKey string) (at time.Time, err error) {
	raw, ok := row.Get(dateKey)
	if !ok {
		err = fmt.Errorf("%w: no %q field", ErrMalformedRecord, dateKey)

		return
	}

	at, err = ToInstant(raw)
	if err != nil {
		err = fmt.Errorf("%w: %q: %v", ErrMalformedRecord, dateKey, err)
	}

	return
}

// ToInstant converts a date-like value. Numbers are milliseconds since the Unix
// epoch, strings are parsed in UTC.
func ToInstant(v any) (at time.Time, err error) {
	switch d := v.(type) {
	case nil:
		err = fmt.Errorf("empty date")

		return
	case bool:
		err = fmt.Errorf("unable to cast %#v to time", d)

		return
	case time.Time:
		at = d
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		ms, e := cast.ToFloat64E(d)
		if e != nil {
			err = e

			return
		}

		if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
			err = fmt.Errorf("invalid epoch milliseconds %v", ms)

			return
		}

		at = time.UnixMilli(int64(ms)).UTC()
	default:
		at, err = cast.ToTimeE(d)
		if err != nil {
			return
		}
	}

	if at.IsZero() {
		err = fmt.Errorf("zero time")
	}

	return
}

func toValue(v any) (f float64, err error) {
	switch v.(type) {
	case nil:
		err = fmt.Errorf("empty value")

		return
	case bool:
		err = fmt.Errorf("unable to cast %#v to float64", v)

		return
	}

	f, err = cast.ToFloat64E(v)
	if err != nil {
		return
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		err = fmt.Errorf("non-finite value %v", f)
	}

	return
}
