// Package topics provides a pluggable, topic-based help system for Cobra
// CLI applications. Help topics are markdown or plain-text files discovered
// in a directory; they extend `help` beyond the commands themselves.
package topics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help topic loaded from a file.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Manager holds the discovered topics and hooks them into a root command.
type Manager struct {
	topicsDir    string
	topics       map[string]*Topic
	extensions   []string
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// Options configures a Manager.
type Options struct {
	// Extensions lists file extensions considered topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for the terminal.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a Manager reading topics from topicsDir.
func New(topicsDir string, opts Options) *Manager {
	m := &Manager{
		topicsDir:  topicsDir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	return m
}

// scan loads every topic file in the topics directory. A missing directory
// is not an error, it just means no topics.
func (m *Manager) scan() error {
	entries, err := os.ReadDir(m.topicsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !m.supported(ext) {
			continue
		}
		path := filepath.Join(m.topicsDir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(e.Name(), ext)
		m.topics[name] = &Topic{Name: name, FilePath: path, Content: string(content)}
	}
	return nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names ("--width") resolve
// to their bare form.
func (m *Manager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	t, ok := m.topics[name]
	return t, ok
}

// ListTopics returns all topic names, sorted.
func (m *Manager) ListTopics() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic's content with the configured renderer.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, filepath.Ext(t.FilePath))
}

// Discover creates a Manager and loads every topic in topicsDir.
func Discover(topicsDir string, opts Options) (*Manager, error) {
	m := New(topicsDir, opts)
	if err := m.scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

// Initialize discovers topics and replaces the root command's help command
// with one that also resolves topic names.
func Initialize(rootCmd *cobra.Command, topicsDir string, opts Options) error {
	m, err := Discover(topicsDir, opts)
	if err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Type ` + rootCmd.Name() + ` help [command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, nil)
				return
			}

			if args[0] == "topics" {
				printTopicList(cmd, m)
				return
			}

			// Commands win over topics of the same name.
			if sub, _, err := rootCmd.Find(args); err == nil && sub != rootCmd {
				m.originalHelp(sub, nil)
				return
			}

			if t, ok := m.GetTopic(args[0]); ok {
				cmd.Print(m.Render(t))
				return
			}

			cmd.PrintErrf("Unknown help topic or command: %s\n", args[0])
			m.originalHelp(rootCmd, nil)
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
	return nil
}

func printTopicList(cmd *cobra.Command, m *Manager) {
	names := m.ListTopics()
	if len(names) == 0 {
		cmd.Println("No help topics available.")
		return
	}
	cmd.Println("Available help topics:")
	for _, name := range names {
		cmd.Printf("  %s\n", name)
	}
	cmd.Printf("\nUse \"%s help <topic>\" to read a topic.\n", cmd.Root().Name())
}
