package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the embedded default configuration file.
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// RenderConfig holds the layout and styling defaults applied when the
// corresponding command-line flag is not given.
type RenderConfig struct {
	Width    int    `koanf:"width" toml:"width"`
	Indent   int    `koanf:"indent" toml:"indent"`
	Expand   bool   `koanf:"expand" toml:"expand"`
	Raw      bool   `koanf:"raw" toml:"raw"`
	Color    string `koanf:"color" toml:"color"`
	Annotate bool   `koanf:"annotate" toml:"annotate"`
	Format   string `koanf:"format" toml:"format"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Config is the full quill configuration.
type Config struct {
	Render RenderConfig `koanf:"render" toml:"render"`
	Log    LogConfig    `koanf:"log" toml:"log"`
}
