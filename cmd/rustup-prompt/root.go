// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rustup-prompt/rustup-prompt/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "rustup-prompt",
		Short: "Print the rustup toolchain override for the current directory",
		Long: TitleStyle.Render("rustup-prompt") + SubtitleStyle.Render(" - rustup toolchain for your shell prompt") + `

Looks up the directory override recorded by rustup (or multirust) for the
current directory or its nearest ancestor and prints the short toolchain
name, e.g. "nightly-2016-06-05" or "stable". Prints "default" when no
override applies.

` + SubtitleStyle.Render("Examples:") + `
  rustup-prompt                       Toolchain for the current directory
  rustup-prompt --dir ~/src/project   Toolchain for another directory
  rustup-prompt normalize nightly-x86_64-unknown-linux-gnu
  rustup-prompt doctor                Check the override database`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runResolve(cmd.Context(), opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/rustup-prompt/config.cue)")
	flags.StringVar(&opts.home, "home", "", "directory holding .rustup and .multirust (default is the user home)")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "resolve for this directory instead of the working directory")

	rootCmd.AddCommand(newNormalizeCommand(app))
	rootCmd.AddCommand(newListCommand(app, opts))
	rootCmd.AddCommand(newDoctorCommand(app, opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI with production dependencies. It is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// warn prints a styled warning for err on stderr.
func (a *App) warn(err error, verbose bool) {
	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// include suggestions, and the error chain in verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
