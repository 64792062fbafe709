package main

import (
	"os"

	"github.com/gbr1/matrix-editor/internal/cli"
)

// main runs the matrixed CLI. With no subcommand it opens the interactive
// editor. It exits with status 1 if the command returns an error.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
