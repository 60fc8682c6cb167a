package main

import (
	"os"

	"github.com/meur/tierboard/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
