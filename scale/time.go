package scale

import (
	"fmt"
	"math"
	"sort"
	"time"

	"bitbucket.org/tebeka/strftime"
)

type Time struct {
	d0, d1 time.Time
	r0, r1 float64
}

func NewTime(d0, d1 time.Time, r0, r1 float64) *Time {
	return &Time{d0: d0.UTC(), d1: d1.UTC(), r0: r0, r1: r1}
}

func (s *Time) Map(t time.Time) float64 {
	if s.d0.Equal(s.d1) {
		return (s.r0 + s.r1) / 2
	}

	return s.r0 + seconds(s.d0, t)/seconds(s.d0, s.d1)*(s.r1-s.r0)
}

// seconds is b-a without the time.Duration limit of about 292 years.
func seconds(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
}

func (s *Time) Domain() (d0, d1 time.Time) {
	return s.d0, s.d1
}

func (s *Time) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

func (s *Time) Degenerate() bool {
	return s.d0.Equal(s.d1)
}

func (s *Time) Ticks(count float64) []Tick {
	ts := TimeTicks(s.d0, s.d1, count)

	ticks := make([]Tick, 0, len(ts))
	for _, t := range ts {
		ticks = append(ticks, Tick{
			Offset: s.Map(t),
			Label:  FormatTime(t),
		})
	}

	return ticks
}

type timeUnit struct {
	floor func(t time.Time) time.Time
	next  func(t time.Time, n int) time.Time
	field func(t time.Time) int
}

var (
	unitSecond = timeUnit{
		floor: func(t time.Time) time.Time { return t.Truncate(time.Second) },
		next:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Second) },
		field: func(t time.Time) int { return t.Second() },
	}
	unitMinute = timeUnit{
		floor: func(t time.Time) time.Time { return t.Truncate(time.Minute) },
		next:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Minute) },
		field: func(t time.Time) int { return t.Minute() },
	}
	unitHour = timeUnit{
		floor: func(t time.Time) time.Time { return t.Truncate(time.Hour) },
		next:  func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Hour) },
		field: func(t time.Time) int { return t.Hour() },
	}
	unitDay = timeUnit{
		floor: func(t time.Time) time.Time { return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC) },
		next:  func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) },
		field: func(t time.Time) int { return t.Day() - 1 },
	}
	unitWeek = timeUnit{
		floor: func(t time.Time) time.Time {
			d := unitDay.floor(t)

			return d.AddDate(0, 0, -int(d.Weekday()))
		},
		next:  func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) },
		field: func(t time.Time) int { return 0 },
	}
	unitMonth = timeUnit{
		floor: func(t time.Time) time.Time { return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC) },
		next:  func(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) },
		field: func(t time.Time) int { return int(t.Month()) - 1 },
	}
	unitYear = timeUnit{
		floor: func(t time.Time) time.Time { return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC) },
		next:  func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) },
		field: func(t time.Time) int { return t.Year() },
	}
)

const (
	durationDay   = 24 * time.Hour
	durationWeek  = 7 * durationDay
	durationMonth = 30 * durationDay
	durationYear  = 365 * durationDay
)

type tickInterval struct {
	unit     timeUnit
	step     int
	duration time.Duration
}

var tickIntervals = []tickInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, durationDay},
	{unitDay, 2, 2 * durationDay},
	{unitWeek, 1, durationWeek},
	{unitMonth, 1, durationMonth},
	{unitMonth, 3, 3 * durationMonth},
	{unitYear, 1, durationYear},
}

func TimeTicks(start, stop time.Time, count float64) []time.Time {
	if !(count > 0) {
		return nil
	}

	start, stop = start.UTC(), stop.UTC()

	if start.Equal(stop) {
		return []time.Time{start}
	}

	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}

	var ts []time.Time

	target := seconds(start, stop) / count

	idx := sort.Search(len(tickIntervals), func(i int) bool {
		return tickIntervals[i].duration.Seconds() > target
	})

	switch {
	case idx == len(tickIntervals):
		step := TickStep(float64(start.UnixMilli())/float64(durationYear.Milliseconds()),
			float64(stop.UnixMilli())/float64(durationYear.Milliseconds()), count)
		ts = unitRange(unitYear, max(1, int(math.Round(step))), start, stop)
	case idx == 0:
		ts = millisecondTicks(start, stop, count)
	default:
		iv := tickIntervals[idx]
		if target/tickIntervals[idx-1].duration.Seconds() < iv.duration.Seconds()/target {
			iv = tickIntervals[idx-1]
		}

		ts = unitRange(iv.unit, iv.step, start, stop)
	}

	if reverse {
		for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
			ts[i], ts[j] = ts[j], ts[i]
		}
	}

	return ts
}

// unitRange lists every unit boundary in [start,stop] whose field is a multiple of step.
func unitRange(u timeUnit, step int, start, stop time.Time) (ts []time.Time) {
	t := u.floor(start)
	if t.Before(start) {
		t = u.next(t, 1)
	}

	for ; !t.After(stop); t = u.next(t, 1) {
		if u.field(t)%step == 0 {
			ts = append(ts, t)
		}
	}

	return
}

func millisecondTicks(start, stop time.Time, count float64) (ts []time.Time) {
	ms0, ms1 := start.UnixMilli(), stop.UnixMilli()

	step := int64(1)
	if f := math.Round(TickStep(float64(ms0), float64(ms1), count)); f > 1 {
		step = int64(f)
	}

	first := ms0 / step * step
	if first < ms0 {
		first += step
	}

	for ms := first; ms <= ms1; ms += step {
		ts = append(ts, time.UnixMilli(ms).UTC())
	}

	return
}

func FormatTime(t time.Time) string {
	t = t.UTC()

	var format string

	switch {
	case unitSecond.floor(t).Before(t):
		return t.Format(".000")
	case unitMinute.floor(t).Before(t):
		format = ":%S"
	case unitHour.floor(t).Before(t):
		format = hour12(t) + ":%M"
	case unitDay.floor(t).Before(t):
		format = hour12(t) + " %p"
	case unitMonth.floor(t).Before(t):
		if unitWeek.floor(t).Before(t) {
			format = "%a %d"
		} else {
			format = "%b %d"
		}
	case unitYear.floor(t).Before(t):
		format = "%B"
	default:
		format = "%Y"
	}

	s, err := strftime.Format(format, t)
	if err != nil {
		return t.Format(time.RFC3339)
	}

	return s
}

// strftime leaves %I unpadded.
func hour12(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%02d", h)
}
