package svgdoc

import (
	"strings"
	"testing"

	"github.com/sgostarter/libchart/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountRoot(t *testing.T) {
	doc := NewDocument()

	root, err := doc.Mount("")
	require.Nil(t, err)

	root.CreateChild("svg").SetAttr("width", "10").CreateChild("path").SetAttr("d", "M0,0L1,1")

	s := doc.String()
	assert.Contains(t, s, `<svg width="10">`)
	assert.Contains(t, s, `<path d="M0,0L1,1"/>`)
	assert.Len(t, doc.Elements("path"), 1)
}

func TestMountByID(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="a"></div><section><div id="b"></div></section></body></html>`)
	require.Nil(t, err)

	b, err := doc.Mount("b")
	require.Nil(t, err)
	b.CreateChild("p").SetText("hello & bye")

	assert.Contains(t, doc.String(), `<div id="b">`)
	assert.Contains(t, doc.String(), `<p>hello &amp; bye</p>`)

	_, err = doc.Mount("missing")
	assert.ErrorIs(t, err, surface.ErrMountNotFound)
}

func TestAdopt(t *testing.T) {
	page, err := ParseDocument(`<html><body><div id="chart"></div></body></html>`)
	require.Nil(t, err)

	chart := NewDocument()
	chart.Root().CreateChild("svg").SetAttr("id", "inner")

	require.Nil(t, page.Adopt("chart", chart))
	assert.Len(t, page.Elements("svg"), 1)

	inner, err := page.Mount("inner")
	require.Nil(t, err)
	assert.NotNil(t, inner)

	assert.ErrorIs(t, page.Adopt("missing", chart), surface.ErrMountNotFound)
}

func TestWriteTo(t *testing.T) {
	doc := NewDocument()
	doc.Root().CreateChild("svg").CreateChild("g").SetAttr("class", "tick")

	var sb strings.Builder

	n, err := doc.WriteTo(&sb)
	assert.Nil(t, err)
	assert.EqualValues(t, sb.Len(), n)
	assert.Contains(t, sb.String(), `<g class="tick"/>`)
}
