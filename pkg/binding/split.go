package binding

import (
	"github.com/arthur-debert/markbind/pkg/dom"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/marker"
)

// Split pairs a marker name with the text node that now starts at it.
type Split struct {
	Name string
	Node dom.Text
}

// SplitAtOccurrences splits node so each occurrence begins a fresh
// sibling. occurrences must come from marker.FindOccurrences on the
// node's current data.
//
// Without isolate, the node returned for a marker also carries the
// literal text that follows it up to the next marker or the end of the
// original string. With isolate, that trailing text is split off into
// an unbound sibling and the returned node holds only the marker.
func SplitAtOccurrences(node dom.Text, occurrences []marker.Occurrence, isolate bool) ([]Split, error) {
	splits := make([]Split, 0, len(occurrences))

	// base is the offset in the original string where node starts.
	base := 0
	for _, occ := range occurrences {
		if occ.Offset < base {
			return splits, errors.Newf(errors.ErrInternal, "occurrence %s at %d overlaps previous split at %d", occ.Raw, occ.Offset, base)
		}

		start, err := node.SplitAt(occ.Offset - base)
		if err != nil {
			return splits, errors.Wrapf(err, errors.ErrInternal, "failed to split text at marker %s", occ.Raw)
		}
		splits = append(splits, Split{Name: occ.Name(), Node: start})

		if !isolate {
			node, base = start, occ.Offset
			continue
		}

		rest, err := start.SplitAt(occ.Length)
		if err != nil {
			return splits, errors.Wrapf(err, errors.ErrInternal, "failed to isolate marker %s", occ.Raw)
		}
		node, base = rest, occ.End()
	}
	return splits, nil
}
