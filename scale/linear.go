package scale

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s *Linear) Map(v float64) float64 {
	return interpolate(v, s.d0, s.d1, s.r0, s.r1)
}

func (s *Linear) Domain() (d0, d1 float64) {
	return s.d0, s.d1
}

func (s *Linear) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

func (s *Linear) Degenerate() bool {
	return s.d0 == s.d1
}

func (s *Linear) Ticks(count float64) []Tick {
	vs, precision := LinearTicks(s.d0, s.d1, count)

	ticks := make([]Tick, 0, len(vs))

	for _, v := range vs {
		f, _ := v.Float64()

		ticks = append(ticks, Tick{
			Offset: s.Map(f),
			Label:  FormatNumber(v, precision),
		})
	}

	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns tick indexes i1..i2 and the increment. A negative increment
// means the step is 1/-inc, which keeps small steps exact.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)

	factor := 1.0

	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)

		if i1/inc < start {
			i1++
		}

		if i2/inc > stop {
			i2--
		}

		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)

		if i1*inc < start {
			i1++
		}

		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}

	return
}

func TickStep(start, stop, count float64) float64 {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	_, _, inc := tickSpec(start, stop, count)

	step := inc
	if inc < 0 {
		step = 1 / -inc
	}

	if reverse {
		step = -step
	}

	return step
}

// LinearTicks also returns the number of decimals the labels need.
func LinearTicks(start, stop, count float64) (vs []decimal.Decimal, precision int32) {
	if !(count > 0) || math.IsNaN(start) || math.IsNaN(stop) {
		return
	}

	if start == stop {
		d := decimal.NewFromFloat(start)

		return []decimal.Decimal{d}, max(0, -d.Exponent())
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	i1, i2, inc := tickSpec(start, stop, count)
	if !(i2 >= i1) || math.IsInf(inc, 0) || inc == 0 {
		return
	}

	n := int64(i2-i1) + 1
	vs = make([]decimal.Decimal, 0, n)

	if inc < 0 {
		div := decimal.NewFromFloat(-inc)
		for i := int64(0); i < n; i++ {
			vs = append(vs, decimal.NewFromInt(int64(i1)+i).Div(div))
		}

		precision = precisionFixed(1 / -inc)
	} else {
		mul := decimal.NewFromFloat(inc)
		for i := int64(0); i < n; i++ {
			vs = append(vs, decimal.NewFromInt(int64(i1)+i).Mul(mul))
		}

		precision = precisionFixed(inc)
	}

	if reverse {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}

	return
}

func precisionFixed(step float64) int32 {
	step = math.Abs(step)
	if step == 0 {
		return 0
	}

	return int32(max(0, -math.Floor(math.Log10(step)+1e-12)))
}

func FormatNumber(v decimal.Decimal, precision int32) string {
	s := v.StringFixed(precision)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, frac = s[:idx], s[idx:]
	}

	var sb strings.Builder

	if neg && strings.Trim(intPart+frac, "0.") != "" {
		sb.WriteString("−")
	}

	for idx, c := range intPart {
		if idx > 0 && (len(intPart)-idx)%3 == 0 {
			sb.WriteByte(',')
		}

		sb.WriteRune(c)
	}

	sb.WriteString(frac)

	return sb.String()
}
