// SPDX-License-Identifier: MPL-2.0

package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rustup-prompt/rustup-prompt/internal/issue"
	"github.com/rustup-prompt/rustup-prompt/internal/logging"
	"github.com/rustup-prompt/rustup-prompt/internal/overrides"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

var (
	// ErrMissingDatabase is returned when no candidate file exists.
	ErrMissingDatabase = errors.New("no override database found")
	// ErrDatabaseUnreadable is returned when a selected database exists but
	// cannot be opened or read.
	ErrDatabaseUnreadable = errors.New("override database unreadable")
)

type (
	// Locator probes candidate locations on a filesystem.
	Locator struct {
		fs     afero.Fs
		logger *log.Logger
	}

	// ProbeStatus describes what a probe found at one candidate.
	ProbeStatus int

	// Probe is the outcome for a single candidate, used by diagnostics.
	Probe struct {
		Candidate Candidate
		Status    ProbeStatus
		Err       error
	}
)

const (
	// StatusNotFound means the file does not exist.
	StatusNotFound ProbeStatus = iota
	// StatusPresent means the file exists and could be opened.
	StatusPresent
	// StatusUnreadable means the file exists but opening it failed.
	StatusUnreadable
)

// String returns a short label for the status.
func (s ProbeStatus) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusPresent:
		return "present"
	case StatusUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// NewLocator creates a Locator over fsys. A nil logger discards diagnostics.
func NewLocator(fsys afero.Fs, logger *log.Logger) *Locator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Locator{fs: fsys, logger: logger}
}

// NewOSLocator creates a Locator over the real filesystem.
func NewOSLocator(logger *log.Logger) *Locator {
	return NewLocator(afero.NewOsFs(), logger)
}

// Open selects the first candidate under home that opens, reads it fully and
// loads it. The returned Candidate is the selected one; it is the zero value
// when nothing was selected.
//
// Errors wrap ErrMissingDatabase, ErrDatabaseUnreadable or
// overrides.ErrMalformedDatabase.
func (l *Locator) Open(ctx context.Context, home types.FilesystemPath) (*overrides.Store, Candidate, error) {
	if err := home.Validate(); err != nil {
		return nil, Candidate{}, err
	}

	for _, c := range Candidates(home) {
		if err := ctx.Err(); err != nil {
			return nil, Candidate{}, fmt.Errorf("open override database canceled: %w", err)
		}

		f, err := l.fs.Open(c.Path.String())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || !c.StopOnOpenError {
				l.logger.Debug("skipping candidate", "path", c.Path, "err", err)
				continue
			}
			return nil, c, unreadable(c, err)
		}

		data, err := afero.ReadAll(f)
		_ = f.Close() // Read-only handle; close error carries no information.
		if err != nil {
			return nil, c, unreadable(c, err)
		}

		l.logger.Debug("loading override database", "path", c.Path, "format", c.Format, "bytes", len(data))
		store, err := overrides.Load(c.Format, data)
		if err != nil {
			return nil, c, issue.NewErrorContext().
				WithOperation("load override database").
				WithResource(c.Path.String()).
				WithSuggestion("Run 'rustup-prompt doctor' for the expected format").
				Wrap(err).
				BuildError()
		}
		return store, c, nil
	}

	return nil, Candidate{}, ErrMissingDatabase
}

// Probe reports the status of every candidate under home without loading
// anything.
func (l *Locator) Probe(ctx context.Context, home types.FilesystemPath) ([]Probe, error) {
	if err := home.Validate(); err != nil {
		return nil, err
	}

	candidates := Candidates(home)
	probes := make([]Probe, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("probe override databases canceled: %w", err)
		}

		p := Probe{Candidate: c, Status: StatusPresent}
		f, err := l.fs.Open(c.Path.String())
		switch {
		case errors.Is(err, fs.ErrNotExist):
			p.Status = StatusNotFound
		case err != nil:
			p.Status = StatusUnreadable
			p.Err = err
		default:
			_ = f.Close()
		}
		probes = append(probes, p)
	}
	return probes, nil
}

func unreadable(c Candidate, err error) error {
	return issue.NewErrorContext().
		WithOperation("read override database").
		WithResource(c.Path.String()).
		WithSuggestion("Check the file permissions").
		Wrap(fmt.Errorf("%w: %w", ErrDatabaseUnreadable, err)).
		BuildError()
}
