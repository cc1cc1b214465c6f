package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/quill/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	var initPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := initPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := config.WriteStarterConfig(path); err != nil {
				return err
			}
			cmd.Printf("Wrote starter config to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&initPath, "path", "", "Where to write the config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Dump(a.cfg)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(config.DefaultConfigPath())
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}
