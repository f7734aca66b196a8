// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/markbind/pkg/ui/report"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// Renderer draws marker reports as pterm tables under a lipgloss heading
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a marker report as a table
func (r *Renderer) RenderResult(result interface{}) error {
	rep, ok := result.(*report.MarkerReport)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	root := rep.Root
	if root == "" {
		root = "document"
	}
	heading := headingStyle.Render(rep.Document) + mutedStyle.Render(fmt.Sprintf(" root %s, %d markers", root, len(rep.Markers)))
	if _, err := fmt.Fprintln(r.output, heading); err != nil {
		return err
	}
	if len(rep.Markers) == 0 {
		return nil
	}

	data := pterm.TableData{{"Marker", "Text", "Elements", "Attributes", "Value"}}
	for _, m := range rep.Markers {
		value := ""
		if m.Value != nil {
			value = *m.Value
		}
		data = append(data, []string{
			m.Name,
			strconv.Itoa(m.TextNodes),
			strconv.Itoa(m.Elements),
			strings.Join(m.Attributes, ", "),
			value,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).WithWriter(r.output).Render()
}

// RenderError renders an error in red
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, errorStyle.Render("Error:")+" "+err.Error())
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
