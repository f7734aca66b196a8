// Package session prepares a bound document for the render and markers
// commands.
package session

import (
	"github.com/arthur-debert/markbind/pkg/config"
	"github.com/arthur-debert/markbind/pkg/document"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/arthur-debert/markbind/pkg/markbind"
	"github.com/arthur-debert/markbind/pkg/values"
)

// Options describes what to open and which values to apply.
type Options struct {
	Path string
	// Selector overrides document.selector when non-nil.
	Selector *string
	// ValueFiles are loaded in order, then Assignments on top.
	ValueFiles  []string
	Assignments []string
	// Config is used as-is when set. Otherwise it is loaded from WorkDir
	// with Overrides applied.
	Config    *config.Config
	WorkDir   string
	Overrides map[string]interface{}
}

// Session is an opened, bound document with its values applied.
type Session struct {
	Config   *config.Config
	File     *document.File
	Binder   *markbind.Binder
	Selector string
	Values   values.Set
	// Applied lists value names that matched a marker.
	Applied []string
	// Unused lists value names with no marker under the root.
	Unused []string
	// Unfilled lists bound markers that received no value.
	Unfilled []string
}

// Open loads configuration, parses the document, binds the root and
// applies every value.
func Open(opts Options) (*Session, error) {
	log := logging.GetLogger("commands.session")

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load(config.LoadOptions{
			WorkDir:   opts.WorkDir,
			Overrides: opts.Overrides,
		})
		if err != nil {
			return nil, err
		}
	}

	format, err := document.ParseFormat(cfg.Document.Format)
	if err != nil {
		return nil, err
	}
	file, err := document.Open(opts.Path, format)
	if err != nil {
		return nil, err
	}

	vals, err := collect(opts.ValueFiles, opts.Assignments)
	if err != nil {
		return nil, err
	}
	if cfg.Values.StripMarkup {
		vals = vals.Sanitized()
	}
	for _, name := range vals.Invalid() {
		log.Warn().Str("name", name).Msg("Value name can never match a marker")
	}

	selector := cfg.Document.Selector
	if opts.Selector != nil {
		selector = *opts.Selector
	}
	binder, err := markbind.Init(file.Tree, selector,
		markbind.WithRecursive(cfg.Scan.Recursive),
		markbind.WithIsolateMarkers(cfg.Scan.IsolateMarkers),
		markbind.WithAllAttributeMarkers(cfg.Scan.AllAttributeMarkers),
	)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config:   cfg,
		File:     file,
		Binder:   binder,
		Selector: selector,
		Values:   vals,
	}
	ix := binder.Index()
	for _, name := range vals.Names() {
		if _, ok := ix.Lookup(name); !ok {
			log.Warn().Str("name", name).Msg("No marker for value")
			s.Unused = append(s.Unused, name)
			continue
		}
		binder.Ref(name, vals[name])
		s.Applied = append(s.Applied, name)
	}
	for _, name := range ix.Names() {
		if _, ok := vals[name]; !ok {
			log.Info().Str("name", name).Msg("Marker left unfilled")
			s.Unfilled = append(s.Unfilled, name)
		}
	}

	log.Debug().
		Str("path", opts.Path).
		Str("selector", selector).
		Int("markers", ix.Len()).
		Int("applied", len(s.Applied)).
		Msg("Session ready")
	return s, nil
}

func collect(files, assignments []string) (values.Set, error) {
	merged := values.Set{}
	for _, path := range files {
		set, err := values.Load(path)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(set)
	}
	set, err := values.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}
	return merged.Merge(set), nil
}
