package main

import (
	"os"

	"github.com/arthur-debert/quill/cmd/quill/commands"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
