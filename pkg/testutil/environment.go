// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated workspaces for tests that load config or write logs

package testutil

import (
	"path/filepath"
	"testing"
)

// TestEnvironment is a temp workspace with its own XDG directories.
type TestEnvironment struct {
	// Root holds documents and values files.
	Root string
	// ConfigHome is exported as XDG_CONFIG_HOME.
	ConfigHome string
	// StateHome is exported as XDG_STATE_HOME and receives the log file.
	StateHome string

	t *testing.T
}

// NewTestEnvironment creates the workspace and points XDG_CONFIG_HOME and
// XDG_STATE_HOME inside it for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		Root:       filepath.Join(tempDir, "work"),
		ConfigHome: filepath.Join(tempDir, "config"),
		StateHome:  filepath.Join(tempDir, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	return env
}

// WriteFile creates name under Root and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.Root, name, content)
}

// WriteUserConfig writes $XDG_CONFIG_HOME/markbind/config.toml.
func (e *TestEnvironment) WriteUserConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigHome, filepath.Join("markbind", "config.toml"), content)
}

// Path joins name onto Root without creating anything.
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.Root, name)
}
