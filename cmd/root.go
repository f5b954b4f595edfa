// Package cmd implements the process's command-line surface: a single
// `run` subcommand whose lifecycle carries the real work.
//
// Grounded on the prior cmd/root.go: cobra root command construction and
// Execute()'s error-to-exit-code handling. The prior per-verb subcommands
// and --format/--raw output-shaping flags are dropped here — that surface
// belonged to a CLI-as-client model now replaced by the HTTP/JSON dispatch
// engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/coreframe/macui-agent/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "macui-agent",
	Short: "A local UI-automation agent for macOS",
	Long: `macui-agent is a long-running HTTP/JSON service that exposes macOS's
accessibility, input-injection, and screen-capture facilities as a stable,
scriptable API for driving real applications.`,
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}
