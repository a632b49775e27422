// Countryfinder browses the list of countries published by a remote
// directory service.
//
// It fetches the list once, then lets the user narrow it with a
// case-insensitive search and pick an entry. Refreshing re-fetches the list
// without losing the current search.
//
// Usage:
//
//	countryfinder [command] [flags]
//
// Running without arguments launches the interactive browser.
// See 'countryfinder --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/countryfinder/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "countryfinder",
	Short: "Search the list of countries",
	Long: `Fetch the list of countries from a directory service and search it.

If no command is specified, the interactive browser will launch automatically.
Type to filter the list, use the arrow keys to move and enter to select.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the browser when no subcommand provided
		return runBrowser(cmd, args)
	},
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
		fmt.Fprintf(cmd.OutOrStdout(), "countryfinder %s\n", version.Full())
	},
}
