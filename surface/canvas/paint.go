package canvas

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type style struct {
	tx, ty      float64
	stroke      string
	fill        string
	strokeWidth float64
	opacity     float64
	fontSize    float64
	anchor      string
}

func (s style) inherit(n *node) style {
	if v, ok := n.attr("transform"); ok {
		dx, dy := parseTranslate(v)
		s.tx += dx
		s.ty += dy
	}

	if v, ok := n.attr("stroke"); ok {
		s.stroke = v
	}

	if v, ok := n.attr("fill"); ok {
		s.fill = v
	}

	if v, ok := n.number("stroke-width"); ok {
		s.strokeWidth = v
	}

	if v, ok := n.number("stroke-opacity"); ok {
		s.opacity = v
	}

	if v, ok := n.number("font-size"); ok {
		s.fontSize = v
	}

	if v, ok := n.attr("text-anchor"); ok {
		s.anchor = v
	}

	return s
}

type painter struct {
	r    chart.Renderer
	font *truetype.Font
}

func (p *painter) children(n *node, s style) {
	for _, child := range n.children {
		p.paint(child, s.inherit(child))
	}
}

func (p *painter) paint(n *node, s style) {
	switch n.tag {
	case "path":
		p.stroke(s, parsePath(n.attrs["d"]))
	case "line":
		x1, _ := n.number("x1")
		y1, _ := n.number("y1")
		x2, _ := n.number("x2")
		y2, _ := n.number("y2")
		p.stroke(s, []pathPoint{{x: x1, y: y1}, {x: x2, y: y2}})
	case "text":
		p.text(n, s)
	case "title":
	default:
		p.children(n, s)
	}
}

func (p *painter) stroke(s style, pts []pathPoint) {
	c, ok := parseColor(s.stroke)
	if !ok || len(pts) == 0 {
		return
	}

	p.r.ResetStyle()
	p.r.SetStrokeColor(c.WithAlpha(uint8(math.Round(255 * clamp01(s.opacity)))))
	p.r.SetStrokeWidth(s.strokeWidth)

	for idx, pt := range pts {
		x, y := round(s.tx+pt.x), round(s.ty+pt.y)
		if idx == 0 || pt.move {
			p.r.MoveTo(x, y)
		} else {
			p.r.LineTo(x, y)
		}
	}

	p.r.Stroke()
}

func (p *painter) text(n *node, s style) {
	body := strings.TrimSpace(n.text)
	if body == "" {
		return
	}

	c, ok := parseColor(s.fill)
	if !ok {
		return
	}

	x, _ := n.number("x")
	y, _ := n.number("y")

	if v, ok := n.attr("dy"); ok {
		y += parseLength(v, s.fontSize)
	}

	p.r.ResetStyle()
	p.r.SetFont(p.font)
	p.r.SetFontSize(s.fontSize)
	p.r.SetFontColor(c)

	width := float64(p.r.MeasureText(body).Width())

	switch s.anchor {
	case "middle":
		x -= width / 2
	case "end":
		x -= width
	}

	p.r.Text(body, round(s.tx+x), round(s.ty+y))
}

type pathPoint struct {
	x, y float64
	move bool
}

// parsePath understands the absolute M, L, H and V commands.
func parsePath(d string) (pts []pathPoint) {
	var (
		cmd  byte
		cur  pathPoint
		nums []float64
	)

	flush := func() {
		switch cmd {
		case 'M', 'L':
			for idx := 0; idx+1 < len(nums); idx += 2 {
				cur = pathPoint{x: nums[idx], y: nums[idx+1], move: cmd == 'M' && idx == 0}
				pts = append(pts, cur)
			}
		case 'H':
			for _, v := range nums {
				cur = pathPoint{x: v, y: cur.y}
				pts = append(pts, cur)
			}
		case 'V':
			for _, v := range nums {
				cur = pathPoint{x: cur.x, y: v}
				pts = append(pts, cur)
			}
		}

		nums = nums[:0]
	}

	fields := strings.FieldsFunc(d, func(r rune) bool {
		return r == ',' || r == ' '
	})

	for _, f := range fields {
		for len(f) > 0 {
			switch f[0] {
			case 'M', 'L', 'H', 'V':
				flush()
				cmd = f[0]
				f = f[1:]

				continue
			}

			end := strings.IndexAny(f[1:], "MLHV")
			token := f
			if end >= 0 {
				token, f = f[:end+1], f[end+1:]
			} else {
				f = ""
			}

			if v, err := strconv.ParseFloat(token, 64); err == nil {
				nums = append(nums, v)
			}
		}
	}

	flush()

	return
}

func parseTranslate(v string) (dx, dy float64) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "translate(") || !strings.HasSuffix(v, ")") {
		return
	}

	ps := strings.FieldsFunc(v[len("translate("):len(v)-1], func(r rune) bool {
		return r == ',' || r == ' '
	})

	if len(ps) > 0 {
		dx, _ = strconv.ParseFloat(ps[0], 64)
	}

	if len(ps) > 1 {
		dy, _ = strconv.ParseFloat(ps[1], 64)
	}

	return
}

func parseLength(v string, fontSize float64) float64 {
	if strings.HasSuffix(v, "em") {
		f, _ := strconv.ParseFloat(strings.TrimSuffix(v, "em"), 64)

		return f * fontSize
	}

	f, _ := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)

	return f
}

var namedColors = map[string]string{
	"black":     "000000",
	"white":     "ffffff",
	"steelblue": "4682b4",
	"red":       "ff0000",
	"green":     "008000",
	"blue":      "0000ff",
	"orange":    "ffa500",
	"gray":      "808080",
	"grey":      "808080",
	"purple":    "800080",
	"brown":     "a52a2a",
	"teal":      "008080",
}

func parseColor(v string) (drawing.Color, bool) {
	v = strings.ToLower(strings.TrimSpace(v))

	switch {
	case v == "" || v == "none" || v == "transparent":
		return drawing.Color{}, false
	case v == "currentcolor":
		return drawing.ColorBlack, true
	case strings.HasPrefix(v, "#"):
		return drawing.ColorFromHex(v[1:]), true
	}

	if hex, ok := namedColors[v]; ok {
		return drawing.ColorFromHex(hex), true
	}

	return drawing.ColorBlack, true
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
