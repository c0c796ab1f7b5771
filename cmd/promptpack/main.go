// Package main is the entry point for the promptpack CLI application.
package main

import (
	"os"

	"github.com/promptpack/promptpack/cmd/promptpack/cmd"
)

// Version information - set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date

	os.Exit(cmd.Execute())
}
