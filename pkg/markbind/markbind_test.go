// pkg/markbind/markbind_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil parsers over xmldom (etree) and htmldom (x/net/html)
// PURPOSE: Test Init and reactive handles end to end on both host trees

package markbind_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/markbind"
	"github.com/arthur-debert/markbind/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = markbind.WithLogger(zerolog.Nop())

func TestInit_XML(t *testing.T) {
	doc := testutil.ParseXML(t, `<page><div id="app"><p title="/greeting/!"/>/greeting/, world</div><p>/greeting/ outside</p></page>`)

	b, err := markbind.Init(doc, "#app", quiet)
	require.NoError(t, err)
	assert.Equal(t, "div", b.Root().Name())

	greeting := b.Ref("greeting", "Hi")
	assert.Equal(t, `<page><div id="app"><p title="Hi!"/>Hi</div><p>/greeting/ outside</p></page>`, doc.String())

	greeting.Set("Yo")
	assert.Equal(t, "Yo", greeting.Value())
	assert.Equal(t, `<page><div id="app"><p title="Yo!"/>Yo</div><p>/greeting/ outside</p></page>`, doc.String())
}

func TestInit_HTML(t *testing.T) {
	doc := testutil.ParseHTML(t, `<html><body><div id="app" title="/greeting/!">/greeting/, world</div></body></html>`)

	b, err := markbind.Init(doc, "#app", quiet)
	require.NoError(t, err)

	greeting := b.Ref("greeting", "Hi")
	assert.Contains(t, doc.String(), `<div id="app" title="Hi!">Hi</div>`)

	greeting.Set("Yo")
	assert.Contains(t, doc.String(), `<div id="app" title="Yo!">Yo</div>`)
}

func TestInit_RootNotFound(t *testing.T) {
	doc := testutil.ParseXML(t, `<page/>`)

	_, err := markbind.Init(doc, "#does-not-exist", quiet)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, markbind.ErrRootNotFound))
	assert.Equal(t, "#does-not-exist", errors.GetErrorDetails(err)["selector"])
	assert.Contains(t, err.Error(), "#does-not-exist")
}

func TestInit_RootNotFoundBeforeScan(t *testing.T) {
	doc := &testutil.MockDocument{}
	_, err := markbind.Init(doc, "#x", quiet)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
	assert.Equal(t, []string{"#x"}, doc.Selectors)

	_, err = markbind.Init(nil, "#x", quiet)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
}

func TestInit_QueryErrorPropagates(t *testing.T) {
	queryErr := errors.New(errors.ErrInvalidSelector, "bad path")
	doc := &testutil.MockDocument{
		QueryFunc: func(string) (dom.Element, error) { return nil, queryErr },
	}
	_, err := markbind.Init(doc, "[", quiet)
	assert.Same(t, queryErr, err)
}

func TestInit_InvalidSelector(t *testing.T) {
	doc := testutil.ParseHTML(t, `<p>x</p>`)

	_, err := markbind.Init(doc, "p[", quiet)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelector))
}

func TestRef_Nonexistent(t *testing.T) {
	src := `<page id="app">/a/ text</page>`
	doc := testutil.ParseXML(t, src)
	b, err := markbind.Init(doc, "#app", quiet)
	require.NoError(t, err)
	before := doc.String()

	assert.NotPanics(t, func() {
		r := b.Ref("nonexistent", "x")
		r.Set("y")
	})
	assert.Equal(t, before, doc.String())
}

func TestRefOf_Typed(t *testing.T) {
	doc := testutil.ParseXML(t, `<cart id="c" items="/count/">/count/</cart>`)
	b, err := markbind.Init(doc, "#c", quiet)
	require.NoError(t, err)

	count := markbind.RefOf(b, "count", 0)
	count.Set(count.Value() + 2)
	assert.Equal(t, `<cart id="c" items="2">2</cart>`, doc.String())

	b.Update("count", 7)
	assert.Equal(t, 2, count.Value())
	assert.Equal(t, `<cart id="c" items="7">7</cart>`, doc.String())
}

func TestOptions(t *testing.T) {
	src := `<r id="r"><p title="/a/-/b/">/deep/ tail</p></r>`

	doc := testutil.ParseXML(t, src)
	b, err := markbind.Init(doc, "#r", quiet,
		markbind.WithRecursive(true),
		markbind.WithIsolateMarkers(true),
		markbind.WithAllAttributeMarkers(true))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "deep"}, b.Index().Names())
	b.Update("deep", "D")
	b.Update("b", "2")
	b.Update("a", "1")
	assert.Equal(t, `<r id="r"><p title="1-2">D tail</p></r>`, doc.String())

	doc = testutil.ParseXML(t, src)
	b, err = markbind.Init(doc, "#r", quiet, markbind.WithRecursive(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, b.Index().Names())
}
