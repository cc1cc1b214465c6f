package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/quill/pkg/errors"
	"github.com/arthur-debert/quill/pkg/logging"
)

// baseDefaults are the values used when a key is missing from every other
// layer, including the embedded defaults file.
func baseDefaults() map[string]interface{} {
	return map[string]interface{}{
		"render.width":  78,
		"render.indent": 2,
		"render.color":  "auto",
	}
}

// DefaultConfigPath returns the user configuration file location. A live
// XDG_CONFIG_HOME value wins over the cached xdg resolution.
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quill", "quill.toml")
	}
	return filepath.Join(xdg.ConfigHome, "quill", "quill.toml")
}

// Load builds the effective configuration: embedded defaults, then the
// user config file, then QUILL_* environment variables, each layer
// overriding the previous one.
//
// With an empty path the default location is used and a missing file is
// fine; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Hard-coded base values, then the embedded defaults file on top
	if err := k.Load(confmap.Provider(baseDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load base defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config file
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", path)
		}
		logger.Debug().Str("path", path).Msg("no user config file")
	} else {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded user config file")
	}

	// 3. Environment variables, QUILL_RENDER_WIDTH style
	err := k.Load(env.Provider("QUILL_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "QUILL_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Render.Color {
	case "", "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid color mode %q (want auto, always or never)", cfg.Render.Color)
	}
	switch cfg.Render.Format {
	case "", "json", "yaml", "yml", "toml", "xml":
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid input format %q", cfg.Render.Format)
	}
	if cfg.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "verbosity cannot be negative: %d", cfg.Log.Verbosity)
	}
	return nil
}
