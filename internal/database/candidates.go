// SPDX-License-Identifier: MPL-2.0

package database

import (
	"github.com/rustup-prompt/rustup-prompt/internal/overrides"
	"github.com/rustup-prompt/rustup-prompt/pkg/fspath"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

const (
	multirustDir types.FilesystemPath = ".multirust"
	rustupDir    types.FilesystemPath = ".rustup"

	overridesFile types.FilesystemPath = "overrides"
	settingsFile  types.FilesystemPath = "settings.toml"
)

// Candidate is one possible override database location.
type Candidate struct {
	Path   types.FilesystemPath
	Format overrides.Format
	// StopOnOpenError makes an open failure other than "not found" final
	// instead of moving on to the next candidate.
	StopOnOpenError bool
}

// Candidates returns the database locations under home in probe order.
func Candidates(home types.FilesystemPath) []Candidate {
	return []Candidate{
		{Path: fspath.Join(home, multirustDir, overridesFile), Format: overrides.FormatPlain, StopOnOpenError: true},
		{Path: fspath.Join(home, rustupDir, settingsFile), Format: overrides.FormatTOML},
		{Path: fspath.Join(home, multirustDir, settingsFile), Format: overrides.FormatTOML},
	}
}
