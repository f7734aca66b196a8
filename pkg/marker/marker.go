// Package marker recognises /name/ placeholders inside strings.
//
// A marker is a slash, a non-empty name that contains no space, slash or
// asterisk, and a closing slash. There is no escaping and no nesting.
package marker

import (
	"regexp"
	"strings"
)

// Delimiter opens and closes every marker.
const Delimiter = "/"

var pattern = regexp.MustCompile(`/[^ /*]+/`)

// Occurrence is one concrete appearance of a marker within a string.
type Occurrence struct {
	// Raw is the marker text including both delimiters.
	Raw string
	// Offset is the byte offset of the opening delimiter.
	Offset int
	// Length is len(Raw).
	Length int
}

// Name returns the marker name with its delimiters stripped.
func (o Occurrence) Name() string {
	return Strip(o.Raw)
}

// End returns the byte offset just past the closing delimiter.
func (o Occurrence) End() int {
	return o.Offset + o.Length
}

// Contains reports whether text holds at least one marker.
func Contains(text string) bool {
	return pattern.MatchString(text)
}

// FindOccurrences scans text left to right and returns every
// non-overlapping marker in discovery order. The boolean is false when
// text holds no marker at all, so callers can skip further work.
func FindOccurrences(text string) ([]Occurrence, bool) {
	locs := pattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil, false
	}

	occurrences := make([]Occurrence, 0, len(locs))
	for _, loc := range locs {
		occurrences = append(occurrences, Occurrence{
			Raw:    text[loc[0]:loc[1]],
			Offset: loc[0],
			Length: loc[1] - loc[0],
		})
	}
	return occurrences, true
}

// FirstOccurrence returns only the leftmost marker in text. Attribute
// scanning binds a single marker per attribute value and uses this
// lookup instead of FindOccurrences.
func FirstOccurrence(text string) (Occurrence, bool) {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return Occurrence{}, false
	}
	return Occurrence{
		Raw:    text[loc[0]:loc[1]],
		Offset: loc[0],
		Length: loc[1] - loc[0],
	}, true
}

// Strip removes every delimiter from a raw marker.
func Strip(raw string) string {
	return strings.ReplaceAll(raw, Delimiter, "")
}

// Wrap returns the raw marker text for name.
func Wrap(name string) string {
	return Delimiter + name + Delimiter
}

// ValidName reports whether name can appear between delimiters.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " /*")
}
