// Package markbind is the entry point: it finds a root element by
// selector, indexes every /name/ marker beneath it and hands out
// reactive handles that keep the tree in sync with their values.
//
//	doc, _ := xmldom.ParseString(`<p id="app" title="/greeting/!">/greeting/</p>`)
//	b, err := markbind.Init(doc, "#app")
//	if err != nil {
//	    return err
//	}
//	greeting := b.Ref("greeting", "Hi")
//	greeting.Set("Yo")
package markbind

import (
	"github.com/arthur-debert/markbind/pkg/binding"
	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrRootNotFound matches, with errors.Is, the error Init returns when
// the selector resolves to nothing.
var ErrRootNotFound = errors.New(errors.ErrRootNotFound, "root element not found")

// Option adjusts the binding options used by Init.
type Option func(*binding.Options)

// WithRecursive toggles descent into nested elements' children.
func WithRecursive(recursive bool) Option {
	return func(o *binding.Options) { o.Recursive = recursive }
}

// WithIsolateMarkers keeps literal text after a marker out of the bound node.
func WithIsolateMarkers(isolate bool) Option {
	return func(o *binding.Options) { o.IsolateMarkers = isolate }
}

// WithAllAttributeMarkers binds every marker in an attribute value.
func WithAllAttributeMarkers(all bool) Option {
	return func(o *binding.Options) { o.BindAllAttributeMarkers = all }
}

// WithLogger sets the logger used by the binding engine.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *binding.Options) { o.Logger = &logger }
}

// Binder owns the index built over one root element.
type Binder struct {
	root  dom.Element
	index *binding.Index
}

// Init locates the root element for selector and indexes it.
func Init(doc dom.Document, selector string, opts ...Option) (*Binder, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrRootNotFound, "no document to query").
			WithDetail("selector", selector)
	}

	root, err := doc.Query(selector)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.Newf(errors.ErrRootNotFound, "root element not found: %s", selector).
			WithDetail("selector", selector)
	}

	options := binding.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	index, err := binding.Build(root, options)
	if err != nil {
		return nil, err
	}
	return &Binder{root: root, index: index}, nil
}

// Ref returns a handle for name and immediately applies def.
func (b *Binder) Ref(name string, def any) *binding.Ref[any] {
	return binding.NewRef[any](b.index, name, def)
}

// RefOf is the typed form of Binder.Ref.
func RefOf[T any](b *Binder, name string, def T) *binding.Ref[T] {
	return binding.NewRef(b.index, name, def)
}

// Update pushes value to name without going through a handle.
func (b *Binder) Update(name string, value any) {
	b.index.Update(name, value)
}

// Index exposes the binding index.
func (b *Binder) Index() *binding.Index {
	return b.index
}

// Root returns the element the index was built over.
func (b *Binder) Root() dom.Element {
	return b.root
}
