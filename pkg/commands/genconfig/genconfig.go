package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/markbind/pkg/config"
	"github.com/arthur-debert/markbind/pkg/logging"
)

// FileName is the project config file written by GenConfig.
const FileName = "markbind.toml"

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Dir receives markbind.toml when Write is set.
	Dir   string
	Write bool
}

// GenConfigResult carries the generated content and any file written.
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{
		ConfigContent: config.DefaultContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	targetPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, fmt.Errorf("failed to write config to %s: %w", targetPath, err)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
