package topics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopic(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScanDiscoversTopics(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "widths.md", "# Widths\n")
	writeTopic(t, dir, "formats.txt", "Formats.\n")
	writeTopic(t, dir, "ignored.conf", "nope")

	m := New(dir, Options{})
	require.NoError(t, m.scan())

	assert.Equal(t, []string{"formats", "widths"}, m.ListTopics())
}

func TestScanMissingDirIsFine(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "absent"), Options{})
	require.NoError(t, m.scan())
	assert.Empty(t, m.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "width.md", "about width\n")

	m := New(dir, Options{})
	require.NoError(t, m.scan())

	for _, name := range []string{"width", "-width", "--width"} {
		topic, ok := m.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "width", topic.Name)
	}

	_, ok := m.GetTopic("missing")
	assert.False(t, ok)
}

func TestCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "notes.rst", "rst content")
	writeTopic(t, dir, "other.md", "md content")

	m := New(dir, Options{Extensions: []string{".rst"}})
	require.NoError(t, m.scan())
	assert.Equal(t, []string{"notes"}, m.ListTopics())
}

func TestHelpCommandResolvesTopics(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "colors.txt", "All about colors.\n")

	rootCmd := &cobra.Command{Use: "app"}
	require.NoError(t, Initialize(rootCmd, dir, Options{}))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"help", "colors"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "All about colors.")
}

func TestHelpCommandListsTopics(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "colors.txt", "x")
	writeTopic(t, dir, "widths.txt", "y")

	rootCmd := &cobra.Command{Use: "app"}
	require.NoError(t, Initialize(rootCmd, dir, Options{}))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "colors")
	assert.Contains(t, out.String(), "widths")
}

func TestPlainRendererPassthrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
}

func TestGlamourRendererNonMarkdownPassthrough(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
