package config

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/quill/pkg/errors"
)

// GenerateConfigContent generates the starter configuration file content
// with all values commented out.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes TOML content and comments out all non-comment,
// non-blank lines that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [render], [log]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// WriteStarterConfig writes the commented starter config to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteStarterConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config file %s", path)
	}
	return nil
}

// Dump renders the effective configuration as TOML, for `quill config show`.
func Dump(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
