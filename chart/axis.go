package chart

import (
	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/surface"
)

const (
	tickSize    = 6
	tickPadding = 3
	// crisp 1px lines on a whole-pixel grid
	pixelOffset = 0.5
)

func axisGroup(parent surface.Element, transform, anchor string) surface.Element {
	return parent.CreateChild("g").
		SetAttr("transform", transform).
		SetAttr("fill", "none").
		SetAttr("font-size", "10").
		SetAttr("font-family", "sans-serif").
		SetAttr("text-anchor", anchor)
}

// drawBottomAxis draws the time axis. The domain line has no outer ticks and is a
// line element, so series paths are the only paths of a chart.
func drawBottomAxis(parent surface.Element, ts *scale.Time, opts *Options) {
	g := axisGroup(parent, translate(0, opts.Height-opts.Margins.Bottom), "middle")

	r0, r1 := ts.Range()
	g.CreateChild("line").
		SetAttr("class", "domain").
		SetAttr("stroke", "currentColor").
		SetAttr("x1", formatNum(r0+pixelOffset)).
		SetAttr("y1", formatNum(pixelOffset)).
		SetAttr("x2", formatNum(r1+pixelOffset)).
		SetAttr("y2", formatNum(pixelOffset))

	for _, tick := range ts.Ticks(opts.Width / opts.XTickSpacing) {
		t := g.CreateChild("g").
			SetAttr("class", "tick").
			SetAttr("opacity", "1").
			SetAttr("transform", translate(tick.Offset+pixelOffset, 0))
		t.CreateChild("line").
			SetAttr("stroke", "currentColor").
			SetAttr("y2", formatNum(tickSize))
		t.CreateChild("text").
			SetAttr("fill", "currentColor").
			SetAttr("y", formatNum(tickSize+tickPadding)).
			SetAttr("dy", "0.71em").
			SetText(tick.Label)
	}
}

// drawLeftAxis draws the value axis without its domain line. Every tick line
// continues across the plot as a faint gridline.
func drawLeftAxis(parent surface.Element, vs *scale.Linear, label string, opts *Options) {
	m := opts.Margins
	g := axisGroup(parent, translate(m.Left, 0), "end")

	for _, tick := range vs.Ticks(opts.Height / opts.YTickSpacing) {
		t := g.CreateChild("g").
			SetAttr("class", "tick").
			SetAttr("opacity", "1").
			SetAttr("transform", translate(0, tick.Offset+pixelOffset))
		t.CreateChild("line").
			SetAttr("stroke", "currentColor").
			SetAttr("x2", formatNum(-tickSize))
		t.CreateChild("line").
			SetAttr("class", "grid").
			SetAttr("stroke", "currentColor").
			SetAttr("x2", formatNum(opts.Width-m.Left-m.Right)).
			SetAttr("stroke-opacity", "0.1")
		t.CreateChild("text").
			SetAttr("fill", "currentColor").
			SetAttr("x", formatNum(-(tickSize+tickPadding))).
			SetAttr("dy", "0.32em").
			SetText(tick.Label)
	}

	g.CreateChild("text").
		SetAttr("class", "label").
		SetAttr("x", formatNum(-m.Left)).
		SetAttr("y", "10").
		SetAttr("fill", "currentColor").
		SetAttr("text-anchor", "start").
		SetText(label)
}

func translate(x, y float64) string {
	return "translate(" + formatNum(x) + "," + formatNum(y) + ")"
}
