// Package report turns a binding index into a serializable summary.
package report

import (
	"slices"
	"strings"

	"github.com/arthur-debert/markbind/pkg/binding"
	"github.com/arthur-debert/markbind/pkg/marker"
)

// Marker summarizes one binding record.
type Marker struct {
	Name       string   `json:"name"`
	TextNodes  int      `json:"textNodes"`
	Elements   int      `json:"elements"`
	Attributes []string `json:"attributes,omitempty"`
	Value      *string  `json:"value,omitempty"`
}

// MarkerReport lists every marker bound under a root.
type MarkerReport struct {
	Document string   `json:"document"`
	Root     string   `json:"root"`
	Markers  []Marker `json:"markers"`
}

// FromIndex builds a report. Attribute locations are written element@attr.
func FromIndex(document, root string, ix *binding.Index) *MarkerReport {
	r := &MarkerReport{Document: document, Root: root, Markers: []Marker{}}
	for _, name := range ix.Names() {
		rec, _ := ix.Lookup(name)
		m := Marker{
			Name:      name,
			TextNodes: len(rec.TextNodes()),
			Elements:  len(rec.Elements()),
		}

		raw := marker.Wrap(name)
		for _, eb := range rec.Elements() {
			for _, a := range eb.Snapshot {
				if !strings.Contains(a.Value, raw) {
					continue
				}
				loc := eb.Element.Name() + "@" + a.Key
				if !slices.Contains(m.Attributes, loc) {
					m.Attributes = append(m.Attributes, loc)
				}
			}
		}

		if v, ok := ix.Current(name); ok {
			m.Value = &v
		}
		r.Markers = append(r.Markers, m)
	}
	return r
}
