package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/quill/pkg/cobrax/topics"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [name]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := findTopicsDir()
			if dir == "" {
				cmd.Println("No help topics available.")
				return nil
			}
			m, err := topics.Discover(dir, topics.Options{
				Renderer: topics.NewGlamourRenderer(),
			})
			if err != nil {
				return err
			}
			if len(args) == 1 {
				t, ok := m.GetTopic(args[0])
				if !ok {
					return fmt.Errorf("unknown help topic: %s", args[0])
				}
				cmd.Print(m.Render(t))
				return nil
			}
			names := m.ListTopics()
			if len(names) == 0 {
				cmd.Println("No help topics available.")
				return nil
			}
			cmd.Println("Available help topics:")
			for _, name := range names {
				cmd.Printf("  %s\n", name)
			}
			cmd.Printf("\nUse \"quill help <topic>\" to read a topic.\n")
			return nil
		},
	}
}

// findTopicsDir returns the first existing topics directory, preferring the
// one shipped next to the binary.
func findTopicsDir() string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "topics"))
	}
	candidates = append(candidates, "docs/topics")

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
