package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format names an output style. The names match the output.format config
// key and the --output flag.
type Format string

const (
	// FormatAuto resolves to term or text from the destination
	FormatAuto Format = "auto"
	// FormatTerminal renders a styled table
	FormatTerminal Format = "term"
	// FormatText renders plain aligned columns
	FormatText Format = "text"
	// FormatJSON renders the report as indented JSON
	FormatJSON Format = "json"
)

var aliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// ParseFormat accepts a format name or one of its aliases, ignoring case.
func ParseFormat(s string) (Format, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want auto, term, text or json)", s).
		WithDetail("format", s)
}

// Resolve turns FormatAuto into a concrete format for w. Other formats
// are returned unchanged.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	return DetectFormat(file)
}

// DetectFormat picks the styled table only for color-capable terminals.
// NO_COLOR always wins.
func DetectFormat(output *os.File) Format {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
