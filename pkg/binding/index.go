package binding

import (
	"slices"
	"sort"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/rs/zerolog"
)

// Options controls how Build walks and restructures the tree.
type Options struct {
	// Recursive descends into the children of nested elements. When
	// false, nested elements only get their attributes scanned.
	Recursive bool

	// IsolateMarkers splits literal text that follows a marker into an
	// unbound sibling so it survives updates. When false the bound node
	// keeps that text and loses it on the first update.
	IsolateMarkers bool

	// BindAllAttributeMarkers registers every marker found in an
	// attribute value instead of only the first one.
	BindAllAttributeMarkers bool

	// Logger overrides the component logger.
	Logger *zerolog.Logger
}

// DefaultOptions returns full recursive descent with the inherited
// splitting and attribute behaviour.
func DefaultOptions() Options {
	return Options{Recursive: true}
}

// ElementBinding pairs the attribute table captured at scan time with
// the live element it came from. Names lists every marker registered for
// the element; only those are filled when its attributes are recomputed.
type ElementBinding struct {
	Snapshot []dom.Attr
	Element  dom.Element
	Names    []string
}

// Record holds every tree location bound to one marker name.
type Record struct {
	name     string
	texts    []dom.Text
	elements []ElementBinding
}

// Name returns the marker name without delimiters.
func (r *Record) Name() string {
	return r.name
}

// TextNodes returns the bound text nodes in discovery order.
func (r *Record) TextNodes() []dom.Text {
	return slices.Clone(r.texts)
}

// Elements returns the element bindings in discovery order.
func (r *Record) Elements() []ElementBinding {
	return slices.Clone(r.elements)
}

// Index maps marker names to their binding records.
type Index struct {
	records map[string]*Record
	values  map[string]string
	opts    Options
	log     zerolog.Logger
}

func newIndex(opts Options) *Index {
	logger := logging.GetLogger("binding")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Index{
		records: make(map[string]*Record),
		values:  make(map[string]string),
		opts:    opts,
		log:     logger,
	}
}

// record returns the record for name, creating it on first sight.
func (ix *Index) record(name string) *Record {
	if rec, ok := ix.records[name]; ok {
		return rec
	}
	rec := &Record{name: name}
	ix.records[name] = rec
	return rec
}

// Lookup returns the record bound to name.
func (ix *Index) Lookup(name string) (*Record, bool) {
	rec, ok := ix.records[name]
	return rec, ok
}

// Names returns all bound marker names, sorted.
func (ix *Index) Names() []string {
	names := make([]string, 0, len(ix.records))
	for name := range ix.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of binding records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Current returns the last value pushed to a bound name.
func (ix *Index) Current(name string) (string, bool) {
	v, ok := ix.values[name]
	return v, ok
}

// Options returns the options the index was built with.
func (ix *Index) Options() Options {
	return ix.opts
}
