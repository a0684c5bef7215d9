package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
)

type Point struct {
	X, Y float64
}

type PathGeometry struct {
	Series string
	Points []Point
}

func (g PathGeometry) D() string {
	var sb strings.Builder

	for idx, p := range g.Points {
		if idx == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}

		sb.WriteString(formatNum(p.X))
		sb.WriteByte(',')
		sb.WriteString(formatNum(p.Y))
	}

	return sb.String()
}

func BuildGeometry(groups *curve.Groups, ts *scale.Time, vs *scale.Linear) []PathGeometry {
	gs := make([]PathGeometry, 0, groups.Len())

	for _, s := range groups.Series() {
		g := PathGeometry{
			Series: s.Name,
			Points: make([]Point, 0, len(s.Points)),
		}

		for _, p := range s.Points {
			g.Points = append(g.Points, Point{X: ts.Map(p.At), Y: vs.Map(p.Value)})
		}

		gs = append(gs, g)
	}

	return gs
}

func formatNum(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
