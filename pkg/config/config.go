package config

import (
	"fmt"
	"strings"
)

// Config is the fully merged configuration.
type Config struct {
	Scan     Scan     `koanf:"scan"`
	Document Document `koanf:"document"`
	Output   Output   `koanf:"output"`
	Values   Values   `koanf:"values"`
}

// Scan controls how the binding index is built.
type Scan struct {
	Recursive           bool `koanf:"recursive"`
	IsolateMarkers      bool `koanf:"isolate_markers"`
	AllAttributeMarkers bool `koanf:"all_attribute_markers"`
}

// Document controls how documents are read.
type Document struct {
	Format   string `koanf:"format"`
	Selector string `koanf:"selector"`
}

// Output controls how results are written.
type Output struct {
	Indent int    `koanf:"indent"`
	Format string `koanf:"format"`
}

// Values controls how marker values are prepared.
type Values struct {
	StripMarkup bool `koanf:"strip_markup"`
}

var (
	documentFormats = []string{"auto", "xml", "html"}
	outputFormats   = []string{"auto", "term", "text", "json"}
)

func (c *Config) validate() error {
	c.Document.Format = strings.ToLower(c.Document.Format)
	c.Output.Format = strings.ToLower(c.Output.Format)

	if !oneOf(c.Document.Format, documentFormats) {
		return fmt.Errorf("document.format must be one of %s, got %q", strings.Join(documentFormats, ", "), c.Document.Format)
	}
	if !oneOf(c.Output.Format, outputFormats) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(outputFormats, ", "), c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
