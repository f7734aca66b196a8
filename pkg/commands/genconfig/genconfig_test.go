package genconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		dir := t.TempDir()
		result, err := GenConfig(GenConfigOptions{Dir: dir})

		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "[scan]")
		assert.Contains(t, result.ConfigContent, "[document]")
		assert.Contains(t, result.ConfigContent, "isolate_markers = false")
		assert.Empty(t, result.FilesWritten)
		assert.NoFileExists(t, filepath.Join(dir, FileName))
	})

	t.Run("write to directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "site")
		result, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})

		require.NoError(t, err)
		require.Len(t, result.FilesWritten, 1)
		content, err := os.ReadFile(filepath.Join(dir, FileName))
		require.NoError(t, err)
		assert.Equal(t, result.ConfigContent, string(content))
	})

	t.Run("existing file is kept", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

		result, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(content))
	})
}
