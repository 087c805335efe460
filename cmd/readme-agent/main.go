// Readme-agent is a terminal preview of generated project documentation.
//
// It shows a sidebar of documentation types (README, API docs, user guide,
// ...) next to a sample document for the selected type, with a copy
// action and a simulated "generate" action for a GitHub repository URL.
//
// Usage:
//
//	readme-agent [command] [flags]
//
// Running without arguments launches the interactive preview.
// See 'readme-agent --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/readme-agent/internal/logging"
	"github.com/muurk/readme-agent/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "readme-agent",
	Short: "README Agent documentation preview",
	Long: `Generate comprehensive documentation for your GitHub projects.

Browse sample documentation by type, copy it to the clipboard, and try
the generate flow for a repository URL.

If no command is specified, the interactive preview will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPreview,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "readme-agent %s (commit: %s)\n", version.Version, version.Commit)
	},
}
