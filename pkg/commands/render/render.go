package render

import (
	"io"

	"github.com/arthur-debert/markbind/pkg/commands/internal/session"
	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
)

// RenderOptions defines the options for the Render command.
type RenderOptions struct {
	// Path is the document to read.
	Path string
	// Selector overrides the configured root selector when non-nil.
	Selector    *string
	ValueFiles  []string
	Assignments []string
	// OutPath receives the document. Empty means Writer.
	OutPath string
	// InPlace rewrites Path. It cannot be combined with OutPath.
	InPlace bool
	Writer  io.Writer

	WorkDir   string
	Overrides map[string]interface{}
}

// RenderResult reports what a render did.
type RenderResult struct {
	Source      string
	Destination string
	Bytes       int64
	Applied     []string
	Unused      []string
	Unfilled    []string
}

// Render binds the document, applies values and writes it out.
func Render(opts RenderOptions) (*RenderResult, error) {
	log := logging.GetLogger("commands.render")
	defer logging.LogOperationStart(log, "render")()

	if opts.InPlace && opts.OutPath != "" {
		return nil, errors.New(errors.ErrInvalidInput, "in-place and an output path cannot be combined")
	}
	if !opts.InPlace && opts.OutPath == "" && opts.Writer == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no destination for rendered document")
	}

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
	s.File.Indent(s.Config.Output.Indent)

	result := &RenderResult{
		Source:   opts.Path,
		Applied:  s.Applied,
		Unused:   s.Unused,
		Unfilled: s.Unfilled,
	}

	dest := opts.OutPath
	if opts.InPlace {
		dest = opts.Path
	}
	switch {
	case dest != "":
		if err := s.File.Save(dest); err != nil {
			return nil, err
		}
		result.Destination = dest
	default:
		n, err := s.File.WriteTo(opts.Writer)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentWrite, "failed to write rendered document")
		}
		result.Bytes = n
		result.Destination = "-"
	}

	log.Info().
		Str("command", "Render").
		Str("destination", result.Destination).
		Int("applied", len(result.Applied)).
		Msg("Command finished")
	return result, nil
}
