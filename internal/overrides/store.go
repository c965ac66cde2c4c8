// SPDX-License-Identifier: MPL-2.0

package overrides

import (
	"maps"
	"slices"
)

type (
	// Store is an immutable override database. The zero value and a nil *Store
	// both behave as an empty database.
	Store struct {
		format  Format
		entries entries
	}

	// entries is the per-format representation behind a Store. Each format keeps
	// the shape it was decoded into.
	entries interface {
		get(path string) (string, bool)
		len() int
		paths() []string
	}

	// plainEntries holds records read from the line format.
	plainEntries map[string]string

	// tableEntries holds the decoded [overrides] table. Every value was checked
	// to be a string at load time.
	tableEntries map[string]any
)

// Lookup returns the raw toolchain name recorded for exactly path.
func (s *Store) Lookup(path string) (string, bool) {
	if s == nil || s.entries == nil {
		return "", false
	}
	return s.entries.get(path)
}

// Format returns the on-disk format the store was loaded from.
func (s *Store) Format() Format {
	if s == nil {
		return 0
	}
	return s.format
}

// Len returns the number of overrides.
func (s *Store) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.len()
}

// Paths returns every override path in sorted order.
func (s *Store) Paths() []string {
	if s == nil || s.entries == nil {
		return nil
	}
	return s.entries.paths()
}

func (e plainEntries) get(path string) (string, bool) {
	v, ok := e[path]
	return v, ok
}

func (e plainEntries) len() int { return len(e) }

func (e plainEntries) paths() []string { return slices.Sorted(maps.Keys(e)) }

func (e tableEntries) get(path string) (string, bool) {
	v, ok := e[path]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (e tableEntries) len() int { return len(e) }

func (e tableEntries) paths() []string { return slices.Sorted(maps.Keys(e)) }
