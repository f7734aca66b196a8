// Package htmldom adapts golang.org/x/net/html trees to the dom
// interfaces. Selectors are CSS, compiled with cascadia.
package htmldom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"golang.org/x/net/html"
)

// Document wraps a parsed HTML document node.
type Document struct {
	root *html.Node
}

// New wraps an existing document (or any) node.
func New(root *html.Node) *Document {
	return &Document{root: root}
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse HTML document")
	}
	return New(root), nil
}

// ParseString reads an HTML document from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Node returns the underlying document node.
func (d *Document) Node() *html.Node {
	return d.root
}

// WriteTo renders the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := html.Render(cw, d.root); err != nil {
		return cw.n, errors.Wrap(err, errors.ErrDocumentWrite, "failed to render HTML document")
	}
	return cw.n, nil
}

// String renders the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	if _, err := d.WriteTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// Query returns the first element matching the CSS selector. An empty
// selector returns the first element of the document (normally <html>).
func (d *Document) Query(selector string) (dom.Element, error) {
	if strings.TrimSpace(selector) == "" {
		if first := firstElement(d.root); first != nil {
			return &Element{n: first}, nil
		}
		return nil, nil
	}

	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidSelector, "invalid CSS selector %q", selector).
			WithDetail("selector", selector)
	}
	if found := cascadia.Query(d.root, sel); found != nil {
		return &Element{n: found}, nil
	}
	return nil, nil
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c); found != nil {
			return found
		}
	}
	return nil
}

// Element adapts an element node.
type Element struct {
	n *html.Node
}

// WrapElement adapts an element node.
func WrapElement(n *html.Node) *Element {
	return &Element{n: n}
}

// Node returns the underlying node.
func (el *Element) Node() *html.Node {
	return el.n
}

func (el *Element) Kind() dom.Kind { return dom.KindElement }

func (el *Element) Name() string { return el.n.Data }

func (el *Element) Attrs() []dom.Attr {
	attrs := make([]dom.Attr, 0, len(el.n.Attr))
	for _, a := range el.n.Attr {
		attrs = append(attrs, dom.Attr{Key: attrKey(a), Value: a.Val})
	}
	return attrs
}

func (el *Element) SetAttr(key, value string) {
	for i := range el.n.Attr {
		if attrKey(el.n.Attr[i]) == key {
			el.n.Attr[i].Val = value
			return
		}
	}
	el.n.Attr = append(el.n.Attr, html.Attribute{Key: key, Val: value})
}

func (el *Element) Children() []dom.Node {
	var children []dom.Node
	for c := el.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, wrap(c))
	}
	return children
}

func attrKey(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

func wrap(n *html.Node) dom.Node {
	switch n.Type {
	case html.ElementNode:
		return &Element{n: n}
	case html.TextNode:
		return &Text{n: n}
	default:
		return other{}
	}
}

// Text adapts a text node.
type Text struct {
	n *html.Node
}

// Node returns the underlying node.
func (t *Text) Node() *html.Node {
	return t.n
}

func (t *Text) Kind() dom.Kind { return dom.KindText }

func (t *Text) Data() string { return t.n.Data }

func (t *Text) SetData(data string) { t.n.Data = data }

func (t *Text) SplitAt(offset int) (dom.Text, error) {
	data := t.n.Data
	if err := dom.CheckSplitOffset(offset, len(data)); err != nil {
		return nil, err
	}
	if t.n.Parent == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot split a detached text node")
	}

	tail := &html.Node{Type: html.TextNode, Data: data[offset:]}
	t.n.Data = data[:offset]
	t.n.Parent.InsertBefore(tail, t.n.NextSibling)
	return &Text{n: tail}, nil
}

type other struct{}

func (other) Kind() dom.Kind { return dom.KindOther }

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
