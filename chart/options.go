package chart

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 928
	DefaultHeight       = 500
	DefaultSeriesLabel  = "Value"
	DefaultLineColor    = "steelblue"
	DefaultStrokeWidth  = 2
	DefaultXTickSpacing = 80
	DefaultYTickSpacing = 40
	MinTickSpacing      = 1
)

type Margins struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Options struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Margins     Margins `yaml:"margins"`
	SeriesLabel string  `yaml:"seriesLabel"`
	LineColor   string  `yaml:"lineColor"`
	StrokeWidth float64 `yaml:"strokeWidth"`
	// Palette colors series by position; when empty every series uses LineColor.
	Palette []string `yaml:"palette,omitempty"`
	// XTickSpacing and YTickSpacing are the pixels per axis tick.
	XTickSpacing float64 `yaml:"xTickSpacing"`
	YTickSpacing float64 `yaml:"yTickSpacing"`
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margins: Margins{
			Top:    20,
			Right:  30,
			Bottom: 30,
			Left:   40,
		},
		SeriesLabel:  DefaultSeriesLabel,
		LineColor:    DefaultLineColor,
		StrokeWidth:  DefaultStrokeWidth,
		XTickSpacing: DefaultXTickSpacing,
		YTickSpacing: DefaultYTickSpacing,
	}
}

// ParseOptions reads YAML options; keys that are absent keep their defaults.
func ParseOptions(d []byte) (opts Options, err error) {
	opts = DefaultOptions()

	err = yaml.Unmarshal(d, &opts)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)

		return
	}

	err = opts.Validate()

	return
}

func (opts *Options) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfiguration, name, v)
		}

		return nil
	}

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"width", opts.Width},
		{"height", opts.Height},
		{"stroke width", opts.StrokeWidth},
		{"x tick spacing", opts.XTickSpacing},
		{"y tick spacing", opts.YTickSpacing},
	} {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}

	if opts.XTickSpacing < MinTickSpacing || opts.YTickSpacing < MinTickSpacing {
		return fmt.Errorf("%w: tick spacing must be at least %dpx, got %v/%v", ErrInvalidConfiguration,
			MinTickSpacing, opts.XTickSpacing, opts.YTickSpacing)
	}

	m := opts.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("%w: negative margin %+v", ErrInvalidConfiguration, m)
	}

	if err := positive("plot width", opts.Width-m.Left-m.Right); err != nil {
		return err
	}

	return positive("plot height", opts.Height-m.Top-m.Bottom)
}

func (opts *Options) colorOf(idx int) string {
	if len(opts.Palette) == 0 {
		return opts.LineColor
	}

	return opts.Palette[idx%len(opts.Palette)]
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := DefaultOptions()
	for _, o := range option {
		o(&opts)
	}

	return &opts
}

func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func WithSize(width, height float64) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.Margins = Margins{Top: top, Right: right, Bottom: bottom, Left: left}
	}
}

func WithSeriesLabel(label string) Option {
	return func(o *Options) {
		o.SeriesLabel = label
	}
}

func WithLineColor(color string) Option {
	return func(o *Options) {
		o.LineColor = color
	}
}

func WithStrokeWidth(width float64) Option {
	return func(o *Options) {
		o.StrokeWidth = width
	}
}

func WithPalette(colors ...string) Option {
	return func(o *Options) {
		o.Palette = colors
	}
}

func WithTickSpacing(x, y float64) Option {
	return func(o *Options) {
		o.XTickSpacing = x
		o.YTickSpacing = y
	}
}
