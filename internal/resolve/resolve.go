// SPDX-License-Identifier: MPL-2.0

// Package resolve finds the toolchain override that applies to a directory by
// walking from it towards the filesystem root.
package resolve

import (
	"github.com/rustup-prompt/rustup-prompt/pkg/fspath"
	"github.com/rustup-prompt/rustup-prompt/pkg/toolchain"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

// Fallback is printed when no override applies.
const Fallback = "default"

type (
	// Lookup is the read capability resolution needs from an override database.
	// *overrides.Store implements it.
	Lookup interface {
		Lookup(path string) (string, bool)
	}

	// Result is the outcome of a resolution. When Found is false the other
	// fields are empty.
	Result struct {
		Found bool
		// Name is the normalized toolchain name.
		Name string
		// Raw is the toolchain name as recorded in the database.
		Raw string
		// Path is the directory whose override matched.
		Path types.FilesystemPath
	}
)

// NotFound is the result when no directory on the walk has an override.
var NotFound = Result{}

// String returns the normalized name, or Fallback when nothing matched.
func (r Result) String() string {
	if !r.Found {
		return Fallback
	}
	return r.Name
}

// Resolve returns the override for the deepest directory between startDir and
// the filesystem root, inclusive. Directories are tried nearest first, so the
// first hit is the most specific one. A nil store resolves to NotFound.
func Resolve(store Lookup, startDir string) Result {
	if store == nil || startDir == "" {
		return NotFound
	}

	dir := fspath.Clean(types.FilesystemPath(startDir))
	for {
		if raw, ok := store.Lookup(dir.String()); ok {
			return Result{
				Found: true,
				Name:  toolchain.Normalize(raw),
				Raw:   raw,
				Path:  dir,
			}
		}
		if fspath.IsRoot(dir) {
			return NotFound
		}
		dir = fspath.Dir(dir)
	}
}
