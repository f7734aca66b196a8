// Package xmldom adapts github.com/beevik/etree trees to the dom
// interfaces.
package xmldom

import (
	"io"
	"strings"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/beevik/etree"
)

// Document wraps an etree document.
type Document struct {
	doc *etree.Document
}

// New wraps an existing etree document.
func New(doc *etree.Document) *Document {
	return &Document{doc: doc}
}

// Parse reads an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse XML document")
	}
	return New(doc), nil
}

// ParseString reads an XML document from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Etree returns the underlying etree document.
func (d *Document) Etree() *etree.Document {
	return d.doc
}

// Indent reindents the document with the given number of spaces.
func (d *Document) Indent(spaces int) {
	d.doc.Indent(spaces)
}

// WriteTo serializes the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := d.doc.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, errors.ErrDocumentWrite, "failed to write XML document")
	}
	return n, nil
}

// String serializes the document to a string.
func (d *Document) String() string {
	s, err := d.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Query resolves selector against the document.
//
// An empty selector selects the document root, "#id" selects the first
// element whose id attribute equals id in document order, and anything
// else is compiled as an etree path.
func (d *Document) Query(selector string) (dom.Element, error) {
	switch {
	case selector == "":
		if root := d.doc.Root(); root != nil {
			return &Element{e: root}, nil
		}
		return nil, nil
	case strings.HasPrefix(selector, "#"):
		if found := findByID(&d.doc.Element, selector[1:]); found != nil {
			return &Element{e: found}, nil
		}
		return nil, nil
	}

	path, err := etree.CompilePath(selector)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidSelector, "invalid path selector %q", selector).
			WithDetail("selector", selector)
	}
	if found := d.doc.FindElementPath(path); found != nil {
		return &Element{e: found}, nil
	}
	return nil, nil
}

func findByID(e *etree.Element, id string) *etree.Element {
	if v := e.SelectAttr("id"); v != nil && v.Value == id {
		return e
	}
	for _, child := range e.ChildElements() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Element adapts *etree.Element.
type Element struct {
	e *etree.Element
}

// WrapElement adapts an etree element.
func WrapElement(e *etree.Element) *Element {
	return &Element{e: e}
}

// Etree returns the underlying element.
func (el *Element) Etree() *etree.Element {
	return el.e
}

func (el *Element) Kind() dom.Kind { return dom.KindElement }

func (el *Element) Name() string { return el.e.FullTag() }

func (el *Element) Attrs() []dom.Attr {
	attrs := make([]dom.Attr, 0, len(el.e.Attr))
	for _, a := range el.e.Attr {
		attrs = append(attrs, dom.Attr{Key: a.FullKey(), Value: a.Value})
	}
	return attrs
}

func (el *Element) SetAttr(key, value string) {
	el.e.CreateAttr(key, value)
}

func (el *Element) Children() []dom.Node {
	children := make([]dom.Node, 0, len(el.e.Child))
	for _, tok := range el.e.Child {
		switch t := tok.(type) {
		case *etree.Element:
			children = append(children, &Element{e: t})
		case *etree.CharData:
			children = append(children, &Text{c: t})
		default:
			children = append(children, other{})
		}
	}
	return children
}

// Text adapts *etree.CharData, including CDATA sections.
type Text struct {
	c *etree.CharData
}

// Etree returns the underlying character data token.
func (t *Text) Etree() *etree.CharData {
	return t.c
}

func (t *Text) Kind() dom.Kind { return dom.KindText }

func (t *Text) Data() string { return t.c.Data }

func (t *Text) SetData(data string) { t.c.SetData(data) }

func (t *Text) SplitAt(offset int) (dom.Text, error) {
	data := t.c.Data
	if err := dom.CheckSplitOffset(offset, len(data)); err != nil {
		return nil, err
	}
	parent := t.c.Parent()
	if parent == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot split detached character data")
	}

	var tail *etree.CharData
	if t.c.IsCData() {
		tail = etree.NewCData(data[offset:])
	} else {
		tail = etree.NewText(data[offset:])
	}
	t.c.SetData(data[:offset])
	parent.InsertChildAt(t.c.Index()+1, tail)
	return &Text{c: tail}, nil
}

// other stands in for comments, directives and processing instructions.
type other struct{}

func (other) Kind() dom.Kind { return dom.KindOther }
