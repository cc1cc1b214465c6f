package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/quill/internal/version"
	"github.com/arthur-debert/quill/pkg/cobrax/topics"
	"github.com/arthur-debert/quill/pkg/config"
	"github.com/arthur-debert/quill/pkg/logging"
)

// app carries the state shared between the root command and its
// subcommands: the effective configuration, loaded once per invocation.
type app struct {
	cfgPath string
	cfg     *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "quill",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		// File arguments are accepted directly (shorthand for render).
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity, then let config raise it
			logging.SetupLogger(verbosity)

			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if verbosity == 0 && cfg.Log.Verbosity > 0 {
				logging.SetupLogger(cfg.Log.Verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare file arguments render directly: `quill data.json` is
			// shorthand for `quill render data.json`.
			if len(args) > 0 {
				return runRender(a, cmd, args, renderFlags{})
			}
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initHelpTopics(rootCmd)

	return rootCmd
}

// initHelpTopics wires the topic-based help system, looking for topic files
// next to the binary first and in the source tree during development.
func initHelpTopics(rootCmd *cobra.Command) {
	dir := findTopicsDir()
	if dir == "" {
		return
	}
	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	_ = topics.Initialize(rootCmd, dir, opts)
}
