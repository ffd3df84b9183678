// Package main is the entry point for the liveocr CLI.
package main

import (
	"os"

	"github.com/f3rmion/liveocr/cmd/liveocr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
