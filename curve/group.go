package curve

// Groups maps series names to series, remembering the order in which the names
// were first seen.
type Groups struct {
	keys   []string
	series map[string]*Series
}

func Group(ps []DataPoint) *Groups {
	g := &Groups{
		series: make(map[string]*Series),
	}

	for _, p := range ps {
		s, ok := g.series[p.Name]
		if !ok {
			s = &Series{Name: p.Name}
			g.series[p.Name] = s
			g.keys = append(g.keys, p.Name)
		}

		s.Points = append(s.Points, p)
	}

	return g
}

func (g *Groups) Keys() []string {
	return append([]string(nil), g.keys...)
}

func (g *Groups) Len() int {
	return len(g.keys)
}

func (g *Groups) Get(name string) (s *Series, ok bool) {
	s, ok = g.series[name]

	return
}

// Series returns the groups in key order.
func (g *Groups) Series() []*Series {
	ss := make([]*Series, 0, len(g.keys))
	for _, k := range g.keys {
		ss = append(ss, g.series[k])
	}

	return ss
}
