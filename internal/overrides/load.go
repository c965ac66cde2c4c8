// SPDX-License-Identifier: MPL-2.0

package overrides

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

const (
	// recordSeparator splits a plain record into path and toolchain.
	recordSeparator = ";"
	// overridesKey is the TOML table that holds directory overrides.
	overridesKey = "overrides"
)

// Load parses data according to format. Any failure wraps ErrMalformedDatabase,
// except an unknown format which wraps ErrUnknownFormat.
func Load(format Format, data []byte) (*Store, error) {
	switch format {
	case FormatPlain:
		return LoadPlain(data)
	case FormatTOML:
		return LoadTOML(data)
	default:
		return nil, format.Validate()
	}
}

// LoadPlain parses the legacy line format. Each line is split on ';'; the
// first field is the path and the second the toolchain, any further fields are
// ignored. A line without a separator or with invalid UTF-8 fails the whole
// load. Later records for the same path replace earlier ones.
func LoadPlain(data []byte) (*Store, error) {
	db := make(plainEntries)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(data)+1, bufio.MaxScanTokenSize))

	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			return nil, &MalformedDatabaseError{Format: FormatPlain, Line: line, Reason: "line is not valid UTF-8"}
		}

		fields := strings.Split(string(raw), recordSeparator)
		if len(fields) < 2 {
			return nil, &MalformedDatabaseError{Format: FormatPlain, Line: line, Reason: "no toolchain in line"}
		}
		db[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, &MalformedDatabaseError{Format: FormatPlain, Line: line + 1, Cause: err}
	}

	return &Store{format: FormatPlain, entries: db}, nil
}

// LoadTOML parses a rustup settings document and keeps its [overrides] table.
// Other top-level keys are ignored.
func LoadTOML(data []byte) (*Store, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDatabaseError{Format: FormatTOML, Reason: "invalid TOML", Cause: err}
	}

	raw, ok := doc[overridesKey]
	if !ok {
		return nil, &MalformedDatabaseError{Format: FormatTOML, Reason: "no [overrides] table"}
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, &MalformedDatabaseError{Format: FormatTOML, Reason: fmt.Sprintf("overrides is a %T, not a table", raw)}
	}

	for path, v := range table {
		if _, ok := v.(string); !ok {
			return nil, &MalformedDatabaseError{Format: FormatTOML, Key: path, Reason: fmt.Sprintf("value is a %T, not a string", v)}
		}
	}

	return &Store{format: FormatTOML, entries: tableEntries(table)}, nil
}
