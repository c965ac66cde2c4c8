// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustup-prompt/rustup-prompt/internal/database"
	"github.com/rustup-prompt/rustup-prompt/internal/resolve"
	"github.com/rustup-prompt/rustup-prompt/pkg/fspath"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

// runResolve prints the toolchain for the start directory. It always prints
// exactly one line and never returns an error for database problems: those
// resolve to the fallback and are reported on stderr.
func (a *App) runResolve(ctx context.Context, opts *globalOptions) error {
	s := a.warnedSession(ctx, opts)
	result := a.resolve(ctx, s, opts)
	_, err := fmt.Fprintln(a.stdout, result.String())
	return err
}

func (a *App) resolve(ctx context.Context, s *session, opts *globalOptions) resolve.Result {
	dir, err := a.startDir(opts)
	if err != nil {
		s.logger.Warn("cannot determine start directory", "err", err)
		return resolve.NotFound
	}

	home, err := s.homeDir(opts)
	if err != nil {
		s.logger.Warn(formatErrorForDisplay(err, s.cfg.Verbose))
		return resolve.NotFound
	}

	store, c, err := a.locator(s).Open(ctx, home)
	switch {
	case errors.Is(err, database.ErrMissingDatabase):
		s.logger.Debug("no override database", "home", home)
		return resolve.NotFound
	case err != nil:
		s.logger.Warn(formatErrorForDisplay(err, s.cfg.Verbose))
		return resolve.NotFound
	}

	result := resolve.Resolve(store, dir.String())
	if result.Found {
		s.logger.Debug("override matched", "database", c.Path, "dir", result.Path, "raw", result.Raw, "name", result.Name)
	} else {
		s.logger.Debug("no override applies", "database", c.Path, "dir", dir, "entries", store.Len())
	}
	return result
}

// startDir is the absolute --dir value, or the working directory.
func (a *App) startDir(opts *globalOptions) (types.FilesystemPath, error) {
	if opts.dir != "" {
		return fspath.Abs(types.FilesystemPath(opts.dir))
	}
	wd, err := a.Getwd()
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(wd), nil
}
