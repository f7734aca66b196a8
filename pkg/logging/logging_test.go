package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the global logger and level back after a test.
func restore(t *testing.T) {
	saved, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		Setup(Options{Console: &bytes.Buffer{}, LogFile: "-"})
		log.Logger = saved
		zerolog.SetGlobalLevel(level)
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger_CreatesLogFile(t *testing.T) {
	restore(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	SetupLogger(1)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	logPath := filepath.Join(tempDir, "markbind", "markbind.log")
	_, err := os.Stat(logPath)
	assert.NoError(t, err, "log file should exist at %s", logPath)
}

func TestSetup_ConsoleAndFile(t *testing.T) {
	restore(t)
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "nested", "run.log")

	Setup(Options{Verbosity: 1, Console: &console, LogFile: path})
	logger := GetLogger("binding")
	logger.Info().Msg("bound marker")

	assert.Contains(t, console.String(), "bound marker")
	assert.NotContains(t, console.String(), "\x1b[", "non-tty console should be uncolored")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"binding"`)
	assert.Contains(t, string(data), `"message":"bound marker"`)
}

func TestSetup_FileDisabled(t *testing.T) {
	restore(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	Setup(Options{Console: &bytes.Buffer{}, LogFile: "-"})
	_, err := os.Stat(filepath.Join(stateHome, "markbind"))
	assert.True(t, os.IsNotExist(err))
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "markbind", "markbind.log"), LogFilePath())
}

func TestLogOperationStart(t *testing.T) {
	restore(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "build-index")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "build-index")
	assert.Contains(t, out, "duration")
}
