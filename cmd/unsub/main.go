package main

import (
	"os"

	"github.com/unsub-dev/unsub/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
