package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	mberrors "github.com/arthur-debert/markbind/pkg/errors"
	"github.com/arthur-debert/markbind/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "MARKBIND_"

// ProjectFiles are looked up in the working directory, first match wins.
var ProjectFiles = []string{".markbind.toml", "markbind.toml"}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions locates the configuration layers.
type LoadOptions struct {
	// WorkDir holds the project file. Defaults to the current directory.
	WorkDir string
	// ConfigHome holds markbind/config.toml. Defaults to $XDG_CONFIG_HOME,
	// read at call time, then the platform default.
	ConfigHome string
	// Overrides are applied last, keyed by dotted path ("scan.recursive").
	Overrides map[string]interface{}
}

// Load merges defaults, user config, project config, environment and
// overrides, in that order.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigLoad, "failed to load defaults")
	}

	configHome := opts.ConfigHome
	if configHome == "" {
		configHome = os.Getenv("XDG_CONFIG_HOME")
	}
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	userPath := filepath.Join(configHome, "markbind", "config.toml")
	if err := loadFileIfExists(k, userPath); err != nil {
		return nil, err
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := loadFileIfExists(k, path); err != nil {
				return nil, err
			}
			break
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigLoad, "failed to load env vars")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, mberrors.Wrap(err, mberrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.validate(); err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigParse, "invalid configuration")
	}

	log := logging.GetLogger("config")
	log.Debug().
		Bool("recursive", cfg.Scan.Recursive).
		Bool("isolateMarkers", cfg.Scan.IsolateMarkers).
		Str("format", cfg.Document.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigLoad, "failed to load defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, mberrors.Wrap(err, mberrors.ErrConfigParse, "failed to unmarshal defaults")
	}
	return &cfg, nil
}

// DefaultContent returns the embedded defaults file.
func DefaultContent() string {
	return string(defaultConfig)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return mberrors.Wrapf(err, mberrors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	log := logging.GetLogger("config")
	log.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}
