// Package main is the entry point for the platewatch CLI.
package main

import (
	"os"

	"github.com/platewatch/platewatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
