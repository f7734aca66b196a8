// Package values loads marker values from files and command-line
// assignments.
package values

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/arthur-debert/markbind/pkg/marker"
	"github.com/microcosm-cc/bluemonday"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Set maps marker names to values. Nested tables are flattened into
// dotted names.
type Set map[string]any

// Load decodes a values file, choosing the decoder by extension.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValuesLoad, "failed to read values file %s", path).
			WithDetail("path", path)
	}

	raw := make(map[string]any)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported values file extension %q", ext).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrValuesLoad, "failed to parse values file %s", path).
			WithDetail("path", path)
	}

	set := make(Set)
	flatten("", raw, set)
	log := logging.GetLogger("values")
	log.Debug().Str("path", path).Int("values", len(set)).Msg("Loaded values file")
	return set, nil
}

func flatten(prefix string, in map[string]any, out Set) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// ParseAssignments parses name=value pairs. The value may be empty and
// may itself contain '='.
func ParseAssignments(pairs []string) (Set, error) {
	set := make(Set, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid assignment %q, expected name=value", pair).
				WithDetail("assignment", pair)
		}
		set[name] = value
	}
	return set, nil
}

// Merge returns a new set holding s overlaid by each of others in order.
func (s Set) Merge(others ...Set) Set {
	merged := make(Set, len(s))
	for k, v := range s {
		merged[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}

// Names returns the names in the set, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Invalid returns the names that could never match a marker.
func (s Set) Invalid() []string {
	var bad []string
	for _, name := range s.Names() {
		if !marker.ValidName(name) {
			bad = append(bad, name)
		}
	}
	return bad
}

// Sanitized returns a copy with markup stripped from every string value.
func (s Set) Sanitized() Set {
	policy := bluemonday.StrictPolicy()
	clean := make(Set, len(s))
	for k, v := range s {
		if str, ok := v.(string); ok {
			clean[k] = policy.Sanitize(str)
			continue
		}
		clean[k] = v
	}
	return clean
}
