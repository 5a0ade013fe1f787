// Package main is the entry point for the codehint editor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zjrosen/codehint/cmd"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionString := fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	cmd.SetVersion(versionString)
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
