package main

import (
	"os"

	"github.com/bankcat-dev/bankcat/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
