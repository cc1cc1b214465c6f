package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captured output. stdin may be
// empty. The config home is redirected so a real user config never leaks in.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rootCmd := NewRootCmd()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderJSONFile(t *testing.T) {
	path := writeInput(t, "in.json", `{"a": 1, "b": 2, "c": 3}`)
	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "{ a = 1; b = 2; c = 3; }\n", out)
}

func TestRenderExpanded(t *testing.T) {
	path := writeInput(t, "in.json", `{"a": 1, "b": 2, "c": 3}`)

	for _, args := range [][]string{
		{"render", "--width", "0", path},
		{"render", "--expand", path},
	} {
		out, err := execute(t, "", args...)
		require.NoError(t, err)
		assert.Equal(t, "{\n  a = 1\n  b = 2\n  c = 3\n}\n", out, "args %v", args)
	}
}

func TestRenderCustomIndent(t *testing.T) {
	path := writeInput(t, "in.json", `[1, 2]`)
	out, err := execute(t, "", "render", "--expand", "--indent", "4", path)
	require.NoError(t, err)
	assert.Equal(t, "[\n    1,\n    2\n]\n", out)
}

func TestRenderStdinDefaultsToJSON(t *testing.T) {
	out, err := execute(t, `[1, 2, 3]`, "render")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestRenderStdinWithFormat(t *testing.T) {
	out, err := execute(t, "a: 1\n", "render", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "{ a = 1; }\n", out)
}

func TestRenderYAMLByExtension(t *testing.T) {
	path := writeInput(t, "in.yaml", "name: quill\n")
	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "{ name = \"quill\"; }\n", out)
}

func TestRenderFormatOverridesExtension(t *testing.T) {
	// TOML content in a file with a misleading extension.
	path := writeInput(t, "in.json", "x = 5\n")
	out, err := execute(t, "", "render", "--format", "toml", path)
	require.NoError(t, err)
	assert.Equal(t, "{ x = 5; }\n", out)
}

func TestRenderUnknownExtension(t *testing.T) {
	path := writeInput(t, "in.data", "{}")
	_, err := execute(t, "", "render", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format")
}

func TestRenderMissingFile(t *testing.T) {
	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestRenderMultipleFiles(t *testing.T) {
	one := writeInput(t, "one.json", `{"a": 1}`)
	two := writeInput(t, "two.json", `[true]`)
	out, err := execute(t, "", "render", one, two)
	require.NoError(t, err)
	assert.Equal(t, "{ a = 1; }\n[true]\n", out)
}

func TestRenderToOutputFile(t *testing.T) {
	in := writeInput(t, "in.json", `{"a": 1}`)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	_, err := execute(t, "", "render", "-o", outPath, in)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "{ a = 1; }\n", string(data))
}

func TestRenderBadColorMode(t *testing.T) {
	in := writeInput(t, "in.json", `{}`)
	_, err := execute(t, "", "render", "--color", "sometimes", in)
	require.Error(t, err)
}

func TestRenderWidthFromEnv(t *testing.T) {
	t.Setenv("QUILL_RENDER_WIDTH", "0")
	path := writeInput(t, "in.json", `[1, 2]`)
	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]\n", out)
}

func TestRenderFlagBeatsEnv(t *testing.T) {
	t.Setenv("QUILL_RENDER_WIDTH", "0")
	path := writeInput(t, "in.json", `[1, 2]`)
	out, err := execute(t, "", "render", "--width", "78", path)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quill version")
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[render]")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	out, err := execute(t, "", "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# width = 78")
}

func TestBareFileArgumentRenders(t *testing.T) {
	path := writeInput(t, "in.json", `{"a": 1}`)
	out, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "{ a = 1; }\n", out)
}

func TestTopicsWithoutTopicsDir(t *testing.T) {
	out, err := execute(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "No help topics available.")
}

func TestNoSubcommandIsAnError(t *testing.T) {
	_, err := execute(t, "")
	require.Error(t, err)
}
