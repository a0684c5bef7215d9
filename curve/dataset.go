package curve

import "time"

// Extent is the bounding box of a dataset in time and value.
type Extent struct {
	MinAt    time.Time
	MaxAt    time.Time
	MinValue float64
	MaxValue float64
}

// ExtentOf scans every point regardless of series. ok is false for an empty dataset.
func ExtentOf(ps []DataPoint) (e Extent, ok bool) {
	if len(ps) == 0 {
		return
	}

	e = Extent{
		MinAt:    ps[0].At,
		MaxAt:    ps[0].At,
		MinValue: ps[0].Value,
		MaxValue: ps[0].Value,
	}

	for _, p := range ps[1:] {
		if p.At.Before(e.MinAt) {
			e.MinAt = p.At
		}

		if p.At.After(e.MaxAt) {
			e.MaxAt = p.At
		}

		e.MinValue = min(e.MinValue, p.Value)
		e.MaxValue = max(e.MaxValue, p.Value)
	}

	ok = true

	return
}
