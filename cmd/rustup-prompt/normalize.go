// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/rustup-prompt/rustup-prompt/pkg/toolchain"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Print the short form of toolchain names",
		Long: `Print the short form of each toolchain name, one per line.

The channel (stable, nightly, beta) and release date are kept and the
platform triple is dropped. Custom names are printed unchanged.`,
		Example: `  rustup-prompt normalize nightly-2016-06-05-x86_64-unknown-linux-gnu
  nightly-2016-06-05`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, name := range args {
				if ok, errs := toolchain.Name(name).IsValid(); !ok {
					return &ExitError{Code: types.ExitUsage, Err: errors.Join(errs...)}
				}
			}
			for _, name := range args {
				if _, err := fmt.Fprintln(app.stdout, toolchain.Normalize(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
