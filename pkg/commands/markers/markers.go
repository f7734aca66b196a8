package markers

import (
	"github.com/arthur-debert/markbind/pkg/commands/internal/session"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/arthur-debert/markbind/pkg/ui/report"
)

// ListMarkersOptions defines the options for the ListMarkers command.
type ListMarkersOptions struct {
	// Path is the document to inspect.
	Path string
	// Selector overrides the configured root selector when non-nil.
	Selector *string
	// Values, when given, fill the Value column of the report.
	ValueFiles  []string
	Assignments []string

	WorkDir   string
	Overrides map[string]interface{}
}

// ListMarkersResult carries the report and the configured output format.
type ListMarkersResult struct {
	Report       *report.MarkerReport
	OutputFormat string
}

// ListMarkers reports every marker bound under the root.
func ListMarkers(opts ListMarkersOptions) (*ListMarkersResult, error) {
	log := logging.GetLogger("commands.markers")
	log.Debug().Str("command", "ListMarkers").Str("path", opts.Path).Msg("Executing command")

	s, err := session.Open(session.Options{
		Path:        opts.Path,
		Selector:    opts.Selector,
		ValueFiles:  opts.ValueFiles,
		Assignments: opts.Assignments,
		WorkDir:     opts.WorkDir,
		Overrides:   opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	r := report.FromIndex(opts.Path, s.Selector, s.Binder.Index())
	log.Info().Str("command", "ListMarkers").Int("markerCount", len(r.Markers)).Msg("Command finished")
	return &ListMarkersResult{Report: r, OutputFormat: s.Config.Output.Format}, nil
}
