package main

import (
	"os"

	"github.com/rustyeddy/diary/cmd/diary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
