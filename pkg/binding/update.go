package binding

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/markbind/pkg/marker"
)

// Stringify renders a value the way it is written into the tree. nil
// renders as the empty string.
func Stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Update pushes value into every location bound to name. Updating a
// name that never appeared in the tree does nothing.
//
// Bound text nodes are overwritten entirely. Bound attributes are
// recomputed from the snapshot taken at scan time, substituting only the
// markers bound to that element that currently have a value. Markers
// bound elsewhere in the tree stay literal.
func (ix *Index) Update(name string, value any) {
	rec, ok := ix.records[name]
	if !ok {
		ix.log.Debug().Str("marker", name).Msg("Update for unbound marker ignored")
		return
	}

	s := Stringify(value)
	ix.values[name] = s

	for _, text := range rec.texts {
		text.SetData(s)
	}

	for _, eb := range rec.elements {
		for _, a := range eb.Snapshot {
			eb.Element.SetAttr(a.Key, ix.substitute(a.Value, eb.Names))
		}
	}

	ix.log.Trace().
		Str("marker", name).
		Str("value", s).
		Int("texts", len(rec.texts)).
		Int("elements", len(rec.elements)).
		Msg("Marker updated")
}

// substitute replaces each marker in template that is one of names and
// has a current value. Other markers are kept verbatim.
func (ix *Index) substitute(template string, names []string) string {
	occurrences, ok := marker.FindOccurrences(template)
	if !ok {
		return template
	}

	var sb strings.Builder
	last := 0
	for _, occ := range occurrences {
		if !slices.Contains(names, occ.Name()) {
			continue
		}
		v, ok := ix.values[occ.Name()]
		if !ok {
			continue
		}
		sb.WriteString(template[last:occ.Offset])
		sb.WriteString(v)
		last = occ.End()
	}
	sb.WriteString(template[last:])
	return sb.String()
}
