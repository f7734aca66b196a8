// Package dom defines the slice of a host document model the binding
// engine needs: ordered traversal, node kinds, text get/set/split and
// attribute read/set. Concrete trees live in the xmldom and htmldom
// subpackages.
package dom

import (
	"github.com/arthur-debert/markbind/pkg/errors"
)

// Kind discriminates node types.
type Kind int

const (
	// KindOther covers comments, processing instructions, doctypes and
	// anything else that is never scanned.
	KindOther Kind = iota
	// KindText is a text-content node.
	KindText
	// KindElement is an element carrying attributes and children.
	KindElement
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	default:
		return "other"
	}
}

// Node is any node of a host tree.
type Node interface {
	Kind() Kind
}

// Text is a text-content node.
type Text interface {
	Node
	Data() string
	SetData(data string)
	// SplitAt keeps [0, offset) in the receiver and moves [offset, len)
	// into a new sibling inserted right after it, which is returned.
	// Offsets are byte offsets.
	SplitAt(offset int) (Text, error)
}

// Attr is one attribute of an element. Key is the fully qualified name
// as it appears in the source (prefix:local for namespaced XML).
type Attr struct {
	Key   string
	Value string
}

// Element is an element node.
type Element interface {
	Node
	Name() string
	// Attrs returns a copy of the attribute table in document order.
	Attrs() []Attr
	// SetAttr creates or overwrites the attribute named key.
	SetAttr(key, value string)
	// Children returns the current child list. The slice is a snapshot;
	// later splits do not change it.
	Children() []Node
}

// Document locates elements by selector.
type Document interface {
	// Query returns the first element matching selector, or (nil, nil)
	// when nothing matches. A malformed selector is an
	// INVALID_SELECTOR error.
	Query(selector string) (Element, error)
}

// CheckSplitOffset validates a split offset against a string length.
func CheckSplitOffset(offset, length int) error {
	if offset < 0 || offset > length {
		return errors.Newf(errors.ErrInvalidInput, "split offset %d out of range [0, %d]", offset, length).
			WithDetail("offset", offset).
			WithDetail("length", length)
	}
	return nil
}

// AttrValue returns the value of key in attrs.
func AttrValue(attrs []Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
