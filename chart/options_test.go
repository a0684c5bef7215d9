package chart

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := optionNew()

	assert.EqualValues(t, 928, opts.Width)
	assert.EqualValues(t, 500, opts.Height)
	assert.Equal(t, Margins{Top: 20, Right: 30, Bottom: 30, Left: 40}, opts.Margins)
	assert.Equal(t, "steelblue", opts.LineColor)
	assert.EqualValues(t, 2, opts.StrokeWidth)
	assert.Nil(t, opts.Validate())
}

func TestOptionOverrides(t *testing.T) {
	opts := optionNew(
		WithSize(400, 300),
		WithMargins(1, 2, 3, 4),
		WithSeriesLabel("Portfolio"),
		WithLineColor("#333"),
		WithStrokeWidth(1.5),
		WithPalette("red", "blue"),
		WithTickSpacing(100, 50),
	)

	assert.EqualValues(t, 400, opts.Width)
	assert.EqualValues(t, 300, opts.Height)
	assert.Equal(t, Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}, opts.Margins)
	assert.Equal(t, "Portfolio", opts.SeriesLabel)
	assert.EqualValues(t, 1.5, opts.StrokeWidth)
	assert.Equal(t, "red", opts.colorOf(0))
	assert.Equal(t, "blue", opts.colorOf(1))
	assert.Equal(t, "red", opts.colorOf(2))
	assert.EqualValues(t, 100, opts.XTickSpacing)
	assert.Nil(t, opts.Validate())

	assert.Equal(t, "#333", optionNew(WithLineColor("#333")).colorOf(5))
}

func TestValidate(t *testing.T) {
	cases := map[string][]Option{
		"zero width":         {WithSize(0, 500)},
		"negative height":    {WithSize(928, -1)},
		"negative margin":    {WithMargins(-1, 0, 0, 0)},
		"no plot width":      {WithSize(70, 500)},
		"no plot height":     {WithSize(928, 50)},
		"zero stroke":        {WithStrokeWidth(0)},
		"zero tick spacing":  {WithTickSpacing(0, 40)},
		"sub-pixel ticks":    {WithTickSpacing(80, 1e-9)},
		"margins eat height": {WithMargins(250, 0, 250, 0)},
	}

	for name, options := range cases {
		t.Run(name, func(t *testing.T) {
			err := optionNew(options...).Validate()
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
		})
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`
width: 600
lineColor: "#ff0000"
palette: [red, green]
`))
	assert.Nil(t, err)
	assert.EqualValues(t, 600, opts.Width)
	assert.EqualValues(t, 500, opts.Height)
	assert.Equal(t, Margins{Top: 20, Right: 30, Bottom: 30, Left: 40}, opts.Margins)
	assert.Equal(t, "#ff0000", opts.LineColor)
	assert.Equal(t, []string{"red", "green"}, opts.Palette)

	_, err = ParseOptions([]byte(`width: -5`))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = ParseOptions([]byte(`width: [`))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
