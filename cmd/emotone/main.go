// Package main is the entry point for the emotone CLI.
package main

import (
	"os"

	"emotone/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
