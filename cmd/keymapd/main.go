// Package main is the entry point for the keymapd configuration tool.
package main

import (
	"os"

	"github.com/dshills/keymapd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
