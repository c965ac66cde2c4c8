// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Stable is the stable release channel.
	Stable Name = "stable"
	// Nightly is the nightly release channel.
	Nightly Name = "nightly"
	// Beta is the beta release channel.
	Beta Name = "beta"

	// yearLen is the number of leading digits that mark a release date.
	yearLen = 4
	// dateLen is the length of "-YYYY-MM-DD" following the channel.
	dateLen = 1 + yearLen + 3 + 3
)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid toolchain name")

	// channels is matched in order; the first prefix that fits wins.
	channels = []Name{Stable, Nightly, Beta}
)

type (
	// Name is a toolchain name as stored in an override database or printed to
	// the prompt.
	Name string

	// InvalidNameError is returned when a Name is empty or whitespace-only.
	InvalidNameError struct {
		Value Name
	}
)

// String returns the name as a plain string.
func (n Name) String() string { return string(n) }

// IsValid returns whether the name is non-blank, and the list of validation
// errors if it is not.
func (n Name) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid toolchain name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidName for errors.Is.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Channel returns the release channel n starts with, or "" for custom names.
func (n Name) Channel() Name {
	for _, ch := range channels {
		if strings.HasPrefix(string(n), string(ch)) {
			return ch
		}
	}
	return ""
}

// Channels returns the recognized channel prefixes in matching order.
func Channels() []Name {
	out := make([]Name, len(channels))
	copy(out, channels)
	return out
}

// Normalize returns the canonical short form of a raw toolchain name.
//
//	nightly-2016-06-05-x86_64-unknown-linux-gnu -> nightly-2016-06-05
//	nightly-x86_64-unknown-linux-gnu            -> nightly
//	my-custom-toolchain                         -> my-custom-toolchain
//
// Lengths are counted in runes, and each invalid UTF-8 byte counts as one. The
// result is always a prefix of raw. A name whose year digits are present but
// which is too short to hold a full date collapses to the bare channel.
func Normalize(raw string) string {
	ch := Name(raw).Channel()
	if ch == "" {
		return raw
	}

	chLen := utf8.RuneCountInString(string(ch))
	yearStart, _ := runeOffset(raw, chLen+1)
	yearEnd, _ := runeOffset(raw, chLen+1+yearLen)
	end, ok := runeOffset(raw, chLen+dateLen)
	if !ok || !allDigits(raw[yearStart:yearEnd]) {
		return string(ch)
	}
	return raw[:end]
}

// runeOffset returns the byte offset at which rune n of s starts, or len(s)
// and false when s holds fewer than n runes.
func runeOffset(s string, n int) (int, bool) {
	off := 0
	for range n {
		if off >= len(s) {
			return len(s), false
		}
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off, true
}

func allDigits(s string) bool {
	if len(s) != yearLen {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
