// SPDX-License-Identifier: MPL-2.0

package overrides

import (
	"errors"
	"fmt"
)

const (
	// FormatPlain is the legacy multirust "<path>;<toolchain>" line format.
	FormatPlain Format = iota + 1
	// FormatTOML is the rustup settings.toml format.
	FormatTOML
)

// ErrUnknownFormat is returned by Load for a Format outside the known set.
var ErrUnknownFormat = errors.New("unknown override database format")

// Format identifies the on-disk representation of an override database.
type Format int

// String returns a short human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Validate returns ErrUnknownFormat for unrecognized values.
func (f Format) Validate() error {
	switch f {
	case FormatPlain, FormatTOML:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}
