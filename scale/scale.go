package scale

type Tick struct {
	Offset float64
	Label  string
}

type Scale interface {
	Range() (r0, r1 float64)
	Degenerate() bool
	Ticks(count float64) []Tick
}

// halved so that d1-d0 stays finite for any finite domain
func interpolate(x, d0, d1, r0, r1 float64) float64 {
	if d1 == d0 {
		return (r0 + r1) / 2
	}

	return r0 + (x/2-d0/2)/(d1/2-d0/2)*(r1-r0)
}
