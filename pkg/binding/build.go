package binding

import (
	"slices"

	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/arthur-debert/markbind/pkg/marker"
)

// Build walks the tree rooted at root and returns the populated index.
// A nil root is a ROOT_NOT_FOUND error.
func Build(root dom.Element, opts Options) (*Index, error) {
	if root == nil {
		return nil, errors.New(errors.ErrRootNotFound, "root element not found")
	}

	ix := newIndex(opts)
	done := logging.LogOperationStart(ix.log, "build-index")
	defer done()

	if err := ix.scanElement(root); err != nil {
		return nil, err
	}

	if e := ix.log.Debug(); e.Enabled() {
		texts, elements := 0, 0
		for _, rec := range ix.records {
			texts += len(rec.texts)
			elements += len(rec.elements)
		}
		e.Str("root", root.Name()).
			Int("markers", len(ix.records)).
			Int("textBindings", texts).
			Int("elementBindings", elements).
			Msg("Binding index built")
	}
	return ix, nil
}

// scanElement registers el's attributes, then visits its children from
// last to first so splits never shift the children still to be visited.
func (ix *Index) scanElement(el dom.Element) error {
	ix.scanAttributes(el)

	children := el.Children()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		switch child.Kind() {
		case dom.KindText:
			text, ok := child.(dom.Text)
			if !ok {
				continue
			}
			if err := ix.scanText(text); err != nil {
				return err
			}
		case dom.KindElement:
			nested, ok := child.(dom.Element)
			if !ok {
				continue
			}
			if !ix.opts.Recursive {
				ix.scanAttributes(nested)
				continue
			}
			if err := ix.scanElement(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ix *Index) scanText(text dom.Text) error {
	data := text.Data()
	if !marker.Contains(data) {
		return nil
	}
	occurrences, ok := marker.FindOccurrences(data)
	if !ok {
		return nil
	}

	splits, err := SplitAtOccurrences(text, occurrences, ix.opts.IsolateMarkers)
	if err != nil {
		return err
	}
	for _, s := range splits {
		rec := ix.record(s.Name)
		rec.texts = append(rec.texts, s.Node)
		ix.log.Trace().Str("marker", s.Name).Msg("Bound text node")
	}
	return nil
}

// scanAttributes binds the first marker of every attribute value, or
// all of them when BindAllAttributeMarkers is set. Every binding made for
// el carries its own snapshot and the full list of names bound to el.
func (ix *Index) scanAttributes(el dom.Element) {
	attrs := el.Attrs()

	type hit struct{ name, attr string }
	var found []hit
	var names []string
	for _, a := range attrs {
		var attrNames []string
		if ix.opts.BindAllAttributeMarkers {
			occurrences, _ := marker.FindOccurrences(a.Value)
			for _, occ := range occurrences {
				if !slices.Contains(attrNames, occ.Name()) {
					attrNames = append(attrNames, occ.Name())
				}
			}
		} else if occ, ok := marker.FirstOccurrence(a.Value); ok {
			attrNames = append(attrNames, occ.Name())
		}
		for _, name := range attrNames {
			found = append(found, hit{name: name, attr: a.Key})
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	if len(found) == 0 {
		return
	}

	for _, b := range found {
		rec := ix.record(b.name)
		rec.elements = append(rec.elements, ElementBinding{
			Snapshot: slices.Clone(attrs),
			Element:  el,
			Names:    names,
		})
		ix.log.Trace().
			Str("marker", b.name).
			Str("element", el.Name()).
			Str("attr", b.attr).
			Msg("Bound attribute")
	}
}
