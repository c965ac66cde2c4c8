// SPDX-License-Identifier: MPL-2.0

package overrides

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDatabase is the sentinel wrapped by every load failure. Syntax
// errors and shape errors (no [overrides] table, non-string value) are not
// distinguished by callers.
var ErrMalformedDatabase = errors.New("malformed override database")

// MalformedDatabaseError describes why a database could not be loaded.
type MalformedDatabaseError struct {
	Format Format
	// Line is the 1-based record number for plain databases, zero otherwise.
	Line int
	// Key is the offending override path for TOML shape errors.
	Key    string
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *MalformedDatabaseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "malformed %s override database", e.Format)
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, ": key %q", e.Key)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both ErrMalformedDatabase and the underlying cause.
func (e *MalformedDatabaseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformedDatabase}
	}
	return []error{ErrMalformedDatabase, e.Cause}
}
