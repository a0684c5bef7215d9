package chart

import (
	"time"

	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
)

var (
	EmptyTimeDomain  = [2]time.Time{time.Unix(0, 0).UTC(), time.Unix(0, 0).UTC().Add(24 * time.Hour)}
	EmptyValueDomain = [2]float64{0, 1}
)

// BuildScales derives both scales from the full dataset. For an empty dataset it
// returns scales over the empty domains together with ErrInsufficientData.
func BuildScales(ps []curve.DataPoint, opts *Options) (ts *scale.Time, vs *scale.Linear, err error) {
	m := opts.Margins

	e, ok := curve.ExtentOf(ps)
	if !ok {
		err = ErrInsufficientData
		e = curve.Extent{
			MinAt:    EmptyTimeDomain[0],
			MaxAt:    EmptyTimeDomain[1],
			MinValue: EmptyValueDomain[0],
			MaxValue: EmptyValueDomain[1],
		}
	}

	ts = scale.NewTime(e.MinAt, e.MaxAt, m.Left, opts.Width-m.Right)
	vs = scale.NewLinear(e.MinValue, e.MaxValue, opts.Height-m.Bottom, m.Top)

	return
}
