// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rustup-prompt/rustup-prompt/internal/config"
	"github.com/rustup-prompt/rustup-prompt/internal/database"
	"github.com/rustup-prompt/rustup-prompt/internal/logging"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives an App and gets configuration, the filesystem and output
	// streams through it.
	App struct {
		Config config.Provider
		Fs     afero.Fs
		Getwd  func() (string, error)
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Fs     afero.Fs
		Getwd  func() (string, error)
		Stdout io.Writer
		Stderr io.Writer
	}

	// globalOptions are the persistent flag values shared by all commands.
	globalOptions struct {
		verbose    bool
		configFile string
		home       string
		dir        string
	}

	// session is the per-invocation state derived from flags and config.
	session struct {
		cfg    *config.Config
		logger *log.Logger
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}

	return &App{
		Config: deps.Config,
		Fs:     deps.Fs,
		Getwd:  deps.Getwd,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// newSession loads configuration and builds the logger. A configuration error
// is returned alongside a session built from defaults; it never aborts the
// command, so callers only decide how to report it.
func (a *App) newSession(ctx context.Context, opts *globalOptions) (*session, error) {
	cfg, cfgErr := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(opts.configFile)})
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	return &session{
		cfg:    cfg,
		logger: logging.New(a.stderr, cfg.EffectiveLogLevel()),
	}, cfgErr
}

// warnedSession is newSession with the configuration error reported on stderr.
func (a *App) warnedSession(ctx context.Context, opts *globalOptions) *session {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		a.warn(err, opts.verbose)
	}
	return s
}

// homeDir returns the --home flag value, or the configured/OS home directory.
func (s *session) homeDir(opts *globalOptions) (types.FilesystemPath, error) {
	if opts.home != "" {
		return types.FilesystemPath(opts.home), nil
	}
	return config.HomeDir(s.cfg)
}

// locator returns a database locator over the app filesystem.
func (a *App) locator(s *session) *database.Locator {
	return database.NewLocator(a.Fs, s.logger)
}
