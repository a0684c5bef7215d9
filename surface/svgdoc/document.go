package svgdoc

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/sgostarter/libchart/surface"
)

type Document struct {
	doc *etree.Document
}

func NewDocument() *Document {
	return &Document{
		doc: etree.NewDocument(),
	}
}

func ParseDocument(s string) (*Document, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}

	return &Document{doc: doc}, nil
}

func (d *Document) Root() surface.Element {
	return &element{el: &d.doc.Element}
}

func (d *Document) Mount(id string) (surface.Element, error) {
	if id == "" {
		return d.Root(), nil
	}

	el := findByID(&d.doc.Element, id)
	if el == nil {
		return nil, fmt.Errorf("%w: #%s", surface.ErrMountNotFound, id)
	}

	return &element{el: el}, nil
}

// Adopt copies the top level elements of src under the element with the given id.
func (d *Document) Adopt(id string, src *Document) error {
	mount, err := d.Mount(id)
	if err != nil {
		return err
	}

	parent, _ := mount.(*element)

	for _, child := range src.doc.ChildElements() {
		parent.el.AddChild(child.Copy())
	}

	return nil
}

func (d *Document) Elements(tag string) []*etree.Element {
	var els []*etree.Element

	walk(&d.doc.Element, func(el *etree.Element) bool {
		if el.Tag == tag {
			els = append(els, el)
		}

		return true
	})

	return els
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.doc.Indent(2)

	return d.doc.WriteTo(w)
}

func (d *Document) String() string {
	d.doc.Indent(2)

	s, _ := d.doc.WriteToString()

	return s
}

func findByID(root *etree.Element, id string) (found *etree.Element) {
	walk(root, func(el *etree.Element) bool {
		if el.SelectAttrValue("id", "") == id {
			found = el

			return false
		}

		return true
	})

	return
}

func walk(el *etree.Element, fn func(el *etree.Element) bool) bool {
	for _, child := range el.ChildElements() {
		if !fn(child) || !walk(child, fn) {
			return false
		}
	}

	return true
}

type element struct {
	el *etree.Element
}

func (e *element) CreateChild(tag string) surface.Element {
	return &element{el: e.el.CreateElement(tag)}
}

func (e *element) SetAttr(key, value string) surface.Element {
	e.el.CreateAttr(key, value)

	return e
}

func (e *element) SetText(text string) surface.Element {
	e.el.SetText(text)

	return e
}
