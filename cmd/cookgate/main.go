// Package main is the entry point for the cookgate CLI.
//
// cookgate is a pre-merge CI gate: it validates that a pull request
// against a single-cookbook packaging repository updated its version
// metadata. All functionality lives in the internal/cli package, which
// defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// by the release process. During development they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/cookgate/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// main.go minimal and decouples the build system from cobra.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
