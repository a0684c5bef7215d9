package chart

import (
	"errors"
	"io"
	"strconv"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchart/curve"
	"github.com/sgostarter/libchart/scale"
	"github.com/sgostarter/libchart/surface"
	"github.com/sgostarter/libchart/surface/canvas"
	"github.com/sgostarter/libchart/surface/svgdoc"
)

type RenderResult struct {
	ID         string
	MountID    string
	Series     []string
	Geometries []PathGeometry
	TimeScale  *scale.Time
	ValueScale *scale.Linear
	// Empty is set when there were no data points and only axes were drawn.
	Empty bool
}

// Renderer is safe for concurrent use when each call has its own RenderTarget.
type Renderer struct {
	logger l.Wrapper
}

func NewRenderer(logger l.Wrapper) *Renderer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Renderer{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Renderer")),
	}
}

var defaultRenderer = NewRenderer(nil)

func RenderChart(target surface.RenderTarget, mountID string, rows []curve.Row, mode curve.InputMode,
	valueAxisLabel string, options ...Option) (*RenderResult, error) {
	return defaultRenderer.RenderChart(target, mountID, rows, mode, valueAxisLabel, options...)
}

func RenderSVG(w io.Writer, rows []curve.Row, mode curve.InputMode, valueAxisLabel string,
	options ...Option) (*RenderResult, error) {
	doc := svgdoc.NewDocument()

	result, err := defaultRenderer.RenderChart(doc, "", rows, mode, valueAxisLabel, options...)
	if err != nil {
		return nil, err
	}

	if _, err = doc.WriteTo(w); err != nil {
		return nil, err
	}

	return result, nil
}

func RenderPNG(w io.Writer, rows []curve.Row, mode curve.InputMode, valueAxisLabel string,
	options ...Option) (*RenderResult, error) {
	c := canvas.New(canvas.PNG)

	result, err := defaultRenderer.RenderChart(c, "", rows, mode, valueAxisLabel, options...)
	if err != nil {
		return nil, err
	}

	if err = c.Save(w); err != nil {
		return nil, err
	}

	return result, nil
}

// RenderChart mounts nothing when it returns an error.
func (r *Renderer) RenderChart(target surface.RenderTarget, mountID string, rows []curve.Row,
	mode curve.InputMode, valueAxisLabel string, options ...Option) (*RenderResult, error) {
	opts := optionNew(options...)

	logger := r.logger.WithFields(l.StringField("mount", mountID))

	if err := opts.Validate(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid options")

		return nil, err
	}

	ps, err := curve.Normalize(resolveMode(mode, opts), rows)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("normalize rows failed")

		return nil, err
	}

	groups := curve.Group(ps)

	ts, vs, err := BuildScales(ps, opts)
	empty := errors.Is(err, ErrInsufficientData)

	if empty {
		logger.Debug("no data points, drawing empty axes")
	}

	geometries := BuildGeometry(groups, ts, vs)

	mount, err := target.Mount(mountID)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("mount failed")

		return nil, err
	}

	id := "chart-" + strconv.FormatUint(snowflake.ID(), 36)

	draw(mount, id, ts, vs, geometries, valueAxisLabel, opts)

	logger.WithFields(l.StringField("chart", id), l.IntField("series", len(geometries)),
		l.IntField("points", len(ps))).Debug("chart rendered")

	return &RenderResult{
		ID:         id,
		MountID:    mountID,
		Series:     groups.Keys(),
		Geometries: geometries,
		TimeScale:  ts,
		ValueScale: vs,
		Empty:      empty,
	}, nil
}

func resolveMode(mode curve.InputMode, opts *Options) curve.InputMode {
	switch m := mode.(type) {
	case nil:
		return curve.SingleValueMode{SeriesName: opts.SeriesLabel}
	case curve.SingleValueMode:
		if m.SeriesName == "" {
			m.SeriesName = opts.SeriesLabel
		}

		return m
	case *curve.SingleValueMode:
		if m == nil {
			return curve.SingleValueMode{SeriesName: opts.SeriesLabel}
		}

		if m.SeriesName == "" {
			c := *m
			c.SeriesName = opts.SeriesLabel

			return c
		}
	}

	return mode
}

func draw(mount surface.Element, id string, ts *scale.Time, vs *scale.Linear, geometries []PathGeometry,
	label string, opts *Options) {
	svg := mount.CreateChild("svg").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("id", id).
		SetAttr("width", formatNum(opts.Width)).
		SetAttr("height", formatNum(opts.Height)).
		SetAttr("viewBox", "0 0 "+formatNum(opts.Width)+" "+formatNum(opts.Height)).
		SetAttr("style", "max-width: 100%; height: auto; height: intrinsic;")

	drawBottomAxis(svg, ts, opts)
	drawLeftAxis(svg, vs, label, opts)

	for idx, g := range geometries {
		svg.CreateChild("path").
			SetAttr("class", "line").
			SetAttr("fill", "none").
			SetAttr("stroke", opts.colorOf(idx)).
			SetAttr("stroke-width", formatNum(opts.StrokeWidth)).
			SetAttr("d", g.D()).
			CreateChild("title").
			SetText(g.Series)
	}
}
