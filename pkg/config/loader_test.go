// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs), environment
// PURPOSE: Test layered configuration loading and validation

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolated(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		WorkDir:    t.TempDir(),
		ConfigHome: t.TempDir(),
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.True(t, cfg.Scan.Recursive)
	assert.False(t, cfg.Scan.IsolateMarkers)
	assert.False(t, cfg.Scan.AllAttributeMarkers)
	assert.Equal(t, "auto", cfg.Document.Format)
	assert.Equal(t, "", cfg.Document.Selector)
	assert.Equal(t, 0, cfg.Output.Indent)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.False(t, cfg.Values.StripMarkup)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, cfg, def)
	assert.Contains(t, DefaultContent(), "[scan]")
}

func TestLoad_Layers(t *testing.T) {
	opts := isolated(t)

	userDir := filepath.Join(opts.ConfigHome, "markbind")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.toml"), []byte(`
[scan]
recursive = false

[output]
indent = 4
`), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, "markbind.toml"), []byte(`
[output]
indent = 2

[document]
selector = "#app"
`), 0644))

	t.Run("files", func(t *testing.T) {
		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.False(t, cfg.Scan.Recursive)
		assert.Equal(t, 2, cfg.Output.Indent)
		assert.Equal(t, "#app", cfg.Document.Selector)
	})

	t.Run("env_overrides_files", func(t *testing.T) {
		t.Setenv("MARKBIND_SCAN_ISOLATE_MARKERS", "true")
		t.Setenv("MARKBIND_OUTPUT_INDENT", "8")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.True(t, cfg.Scan.IsolateMarkers)
		assert.Equal(t, 8, cfg.Output.Indent)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("MARKBIND_OUTPUT_INDENT", "8")
		o := opts
		o.Overrides = map[string]interface{}{"output.indent": 1, "document.format": "HTML"}

		cfg, err := Load(o)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Output.Indent)
		assert.Equal(t, "html", cfg.Document.Format)
	})
}

func TestLoad_HiddenProjectFileFirst(t *testing.T) {
	opts := isolated(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, ".markbind.toml"), []byte("[output]\nindent = 3\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, "markbind.toml"), []byte("[output]\nindent = 5\n"), 0644))

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Output.Indent)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed_toml", func(t *testing.T) {
		opts := isolated(t)
		require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, "markbind.toml"), []byte("[scan\n"), 0644))

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("bad_format", func(t *testing.T) {
		opts := isolated(t)
		opts.Overrides = map[string]interface{}{"document.format": "pdf"}

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("negative_indent", func(t *testing.T) {
		opts := isolated(t)
		opts.Overrides = map[string]interface{}{"output.indent": -1}

		_, err := Load(opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoad_LogsThroughCurrentLogger(t *testing.T) {
	var console bytes.Buffer
	logging.Setup(logging.Options{Verbosity: 2, Console: &console, LogFile: "-"})
	t.Cleanup(func() { logging.Setup(logging.Options{Console: &bytes.Buffer{}, LogFile: "-"}) })

	opts := isolated(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkDir, "markbind.toml"), []byte("[scan]\nrecursive = true\n"), 0644))

	_, err := Load(opts)
	require.NoError(t, err)

	out := console.String()
	assert.Contains(t, out, "Loaded config file")
	assert.Contains(t, out, "Configuration loaded")
	assert.Contains(t, out, "component=config")
}
