// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/rustup-prompt/rustup-prompt/internal/database"
	"github.com/rustup-prompt/rustup-prompt/pkg/toolchain"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"

	"github.com/spf13/cobra"
)

func newListCommand(app *App, opts *globalOptions) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the overrides in the selected database",
		Long: `List every override in the database rustup-prompt would use, one
"<path>;<toolchain>" record per line, sorted by path. Nothing is printed when
no database exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := app.warnedSession(cmd.Context(), opts)

			home, err := s.homeDir(opts)
			if err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			store, _, err := app.locator(s).Open(cmd.Context(), home)
			if errors.Is(err, database.ErrMissingDatabase) {
				return nil
			}
			if err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			for _, path := range store.Paths() {
				name, _ := store.Lookup(path)
				if short {
					name = toolchain.Normalize(name)
				}
				if _, err := fmt.Fprintf(app.stdout, "%s;%s\n", path, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print normalized toolchain names")
	return cmd
}
