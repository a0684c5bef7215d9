package canvas

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sgostarter/libchart/surface"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	PNG chart.RendererProvider = chart.PNG
	SVG chart.RendererProvider = chart.SVG
)

const (
	defaultWidth    = 928
	defaultHeight   = 500
	defaultFontSize = 10.0
)

type Canvas struct {
	provider chart.RendererProvider
	root     *node
}

func New(provider chart.RendererProvider) *Canvas {
	if provider == nil {
		provider = SVG
	}

	return &Canvas{
		provider: provider,
		root:     &node{},
	}
}

func (c *Canvas) Mount(id string) (surface.Element, error) {
	if id == "" {
		return c.root, nil
	}

	if n := c.root.find(id); n != nil {
		return n, nil
	}

	return nil, fmt.Errorf("%w: #%s", surface.ErrMountNotFound, id)
}

func (c *Canvas) Size() (width, height int) {
	width, height = defaultWidth, defaultHeight

	svg := c.root.first("svg")
	if svg == nil {
		return
	}

	if v, ok := svg.number("width"); ok && v > 0 {
		width = int(math.Round(v))
	}

	if v, ok := svg.number("height"); ok && v > 0 {
		height = int(math.Round(v))
	}

	return
}

func (c *Canvas) Save(w io.Writer) error {
	width, height := c.Size()

	r, err := c.provider(width, height)
	if err != nil {
		return err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFont(font)

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.LineTo(0, 0)
	r.Fill()

	p := &painter{r: r, font: font}
	p.children(c.root, style{
		stroke:      "none",
		fill:        "black",
		strokeWidth: 1,
		opacity:     1,
		fontSize:    defaultFontSize,
		anchor:      "start",
	})

	return r.Save(w)
}

type node struct {
	tag      string
	attrs    map[string]string
	text     string
	children []*node
}

func (n *node) CreateChild(tag string) surface.Element {
	child := &node{tag: tag}
	n.children = append(n.children, child)

	return child
}

func (n *node) SetAttr(key, value string) surface.Element {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}

	n.attrs[key] = value

	return n
}

func (n *node) SetText(text string) surface.Element {
	n.text = text

	return n
}

func (n *node) attr(key string) (v string, ok bool) {
	v, ok = n.attrs[key]

	return
}

func (n *node) number(key string) (f float64, ok bool) {
	v, ok := n.attrs[key]
	if !ok {
		return
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	ok = err == nil

	return
}

func (n *node) find(id string) *node {
	for _, child := range n.children {
		if child.attrs["id"] == id {
			return child
		}

		if found := child.find(id); found != nil {
			return found
		}
	}

	return nil
}

func (n *node) first(tag string) *node {
	for _, child := range n.children {
		if child.tag == tag {
			return child
		}

		if found := child.first(tag); found != nil {
			return found
		}
	}

	return nil
}
