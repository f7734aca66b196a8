// Package ui renders command results as styled terminal tables, plain
// text or JSON.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/markbind/pkg/ui/json"
	"github.com/arthur-debert/markbind/pkg/ui/terminal"
	"github.com/arthur-debert/markbind/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a result, normally a *report.MarkerReport
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto
// against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %q", string(format))
	}
}
