// Package config handles configuration management for markbind.
// It layers embedded TOML defaults, user and project TOML files,
// environment variables and command-line overrides.
package config
