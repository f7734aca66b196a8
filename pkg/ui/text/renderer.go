// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/markbind/pkg/ui/report"
)

// Renderer writes aligned columns without colors
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a marker report as plain columns
func (r *Renderer) RenderResult(result interface{}) error {
	rep, ok := result.(*report.MarkerReport)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	if _, err := fmt.Fprintf(r.output, "%s (root %s): %d markers\n", rep.Document, rootLabel(rep.Root), len(rep.Markers)); err != nil {
		return err
	}
	if len(rep.Markers) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MARKER\tTEXT\tELEMENTS\tATTRIBUTES")
	for _, m := range rep.Markers {
		attrs := strings.Join(m.Attributes, ", ")
		if attrs == "" {
			attrs = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", m.Name, m.TextNodes, m.Elements, attrs)
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func rootLabel(root string) string {
	if root == "" {
		return "document"
	}
	return root
}
