// pkg/dom/xmldom/xmldom_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: etree
// PURPOSE: Test the etree adapter: selectors, attributes and text splitting

package xmldom_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/dom/xmldom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<page><header id="top" title="/greeting/!">/greeting/, world</header><main><p id="body">text</p></main></page>`

func parse(t *testing.T, s string) *xmldom.Document {
	t.Helper()
	doc, err := xmldom.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestQuery(t *testing.T) {
	doc := parse(t, page)

	tests := []struct {
		name     string
		selector string
		wantTag  string
	}{
		{"empty selects root", "", "page"},
		{"id shorthand", "#body", "p"},
		{"absolute path", "/page/main", "main"},
		{"descendant path", "//header", "header"},
		{"attribute filter", "//*[@id='top']", "header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := doc.Query(tt.selector)
			require.NoError(t, err)
			require.NotNil(t, el)
			assert.Equal(t, tt.wantTag, el.Name())
		})
	}
}

func TestQuery_NotFound(t *testing.T) {
	doc := parse(t, page)

	el, err := doc.Query("#does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, el)

	el, err = doc.Query("//missing")
	assert.NoError(t, err)
	assert.Nil(t, el)
}

func TestQuery_InvalidPath(t *testing.T) {
	doc := parse(t, page)

	_, err := doc.Query("//p[@id='x'")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelector))
}

func TestParse_Invalid(t *testing.T) {
	_, err := xmldom.ParseString("<a><b></a>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
}

func TestElement_AttrsAreCopies(t *testing.T) {
	doc := parse(t, page)
	el, err := doc.Query("#top")
	require.NoError(t, err)

	attrs := el.Attrs()
	assert.Equal(t, []dom.Attr{{Key: "id", Value: "top"}, {Key: "title", Value: "/greeting/!"}}, attrs)

	el.SetAttr("title", "Hi!")
	assert.Equal(t, "/greeting/!", attrs[1].Value)
	v, _ := dom.AttrValue(el.Attrs(), "title")
	assert.Equal(t, "Hi!", v)

	el.SetAttr("lang", "en")
	assert.Len(t, el.Attrs(), 3)
}

func TestElement_NamespacedAttr(t *testing.T) {
	doc := parse(t, `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="/target/"/></svg>`)
	el, err := doc.Query("//use")
	require.NoError(t, err)

	assert.Equal(t, []dom.Attr{{Key: "xlink:href", Value: "/target/"}}, el.Attrs())
	el.SetAttr("xlink:href", "#icon")
	assert.Equal(t, []dom.Attr{{Key: "xlink:href", Value: "#icon"}}, el.Attrs())
}

func TestChildrenKinds(t *testing.T) {
	doc := parse(t, `<r>a<!--c--><b/><![CDATA[x]]></r>`)
	root, err := doc.Query("")
	require.NoError(t, err)

	var kinds []dom.Kind
	for _, c := range root.Children() {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, []dom.Kind{dom.KindText, dom.KindOther, dom.KindElement, dom.KindText}, kinds)
}

func TestText_SplitAt(t *testing.T) {
	doc := parse(t, `<r>Hello /name/!</r>`)
	root, err := doc.Query("")
	require.NoError(t, err)

	text := root.Children()[0].(dom.Text)
	tail, err := text.SplitAt(6)
	require.NoError(t, err)

	assert.Equal(t, "Hello ", text.Data())
	assert.Equal(t, "/name/!", tail.Data())
	require.Len(t, root.Children(), 2)
	assert.Equal(t, "/name/!", root.Children()[1].(dom.Text).Data())

	// Serialization is unchanged by a split.
	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, `<r>Hello /name/!</r>`, buf.String())
}

func TestText_SplitAtBeforeSibling(t *testing.T) {
	doc := parse(t, `<r>ab<x/>cd</r>`)
	root, err := doc.Query("")
	require.NoError(t, err)

	first := root.Children()[0].(dom.Text)
	_, err = first.SplitAt(1)
	require.NoError(t, err)

	assert.Equal(t, `<r>ab<x/>cd</r>`, doc.String())
	children := root.Children()
	require.Len(t, children, 4)
	assert.Equal(t, "a", children[0].(dom.Text).Data())
	assert.Equal(t, "b", children[1].(dom.Text).Data())
	assert.Equal(t, dom.KindElement, children[2].Kind())
}

func TestText_SplitAtOutOfRange(t *testing.T) {
	doc := parse(t, `<r>abc</r>`)
	root, err := doc.Query("")
	require.NoError(t, err)

	_, err = root.Children()[0].(dom.Text).SplitAt(4)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestText_SplitCDataKeepsSection(t *testing.T) {
	doc := parse(t, `<r><![CDATA[a /b/]]></r>`)
	root, err := doc.Query("")
	require.NoError(t, err)

	_, err = root.Children()[0].(dom.Text).SplitAt(2)
	require.NoError(t, err)
	assert.Equal(t, `<r><![CDATA[a ]]><![CDATA[/b/]]></r>`, doc.String())
}
