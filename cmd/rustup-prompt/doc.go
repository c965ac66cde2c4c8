// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rustup-prompt.
//
// The root command prints the toolchain override for the current directory,
// or "default", as a single line on stdout. Subcommands normalize names, list
// overrides and diagnose the override database. Diagnostics only ever go to
// stderr.
package cmd
