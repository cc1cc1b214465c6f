package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/quill/pkg/errors"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope", "quill.toml"))
	require.Error(t, err) // explicit missing path fails

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 78, cfg.Render.Width)
	assert.Equal(t, 2, cfg.Render.Indent)
	assert.False(t, cfg.Render.Expand)
	assert.Equal(t, "auto", cfg.Render.Color)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	content := "[render]\nwidth = 100\ncolor = \"never\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Render.Width)
	assert.Equal(t, "never", cfg.Render.Color)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2, cfg.Render.Indent)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "quill.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUILL_RENDER_WIDTH", "40")
	t.Setenv("QUILL_LOG_VERBOSITY", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Render.Width)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nwidth = 100\n"), 0o644))
	t.Setenv("QUILL_RENDER_WIDTH", "55")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Render.Width)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "[render]\ncolor = \"sometimes\"\n"},
		{"bad format", "[render]\nformat = \"csv\"\n"},
		{"negative verbosity", "[log]\nverbosity = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "quill.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	// Section headers survive, assignments are commented out.
	assert.Contains(t, content, "[render]")
	assert.Contains(t, content, "# width = 78")
	assert.NotContains(t, content, "\nwidth = 78")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["),
			"uncommented non-section line: %q", line)
	}
}

func TestWriteStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "quill.toml")
	require.NoError(t, WriteStarterConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GenerateConfigContent(), string(data))

	err = WriteStarterConfig(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestDefaultPathHonorsConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "quill", "quill.toml"), DefaultConfigPath())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "quill"), 0o755))
	content := "[render]\nindent = 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quill", "quill.toml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Render.Indent)
}

func TestDump(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[render]")
	assert.Contains(t, out, "width = 78")
	assert.Contains(t, out, "[log]")
}
