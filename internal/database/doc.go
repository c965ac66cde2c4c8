// SPDX-License-Identifier: MPL-2.0

// Package database selects and opens the override database for a user.
//
// Three locations are probed in a fixed order and the first one that opens is
// used, even if it later fails to parse:
//
//  1. ~/.multirust/overrides      (plain, legacy multirust)
//  2. ~/.rustup/settings.toml     (TOML, current rustup)
//  3. ~/.multirust/settings.toml  (TOML, legacy multirust)
//
// A legacy plain file that exists but cannot be opened stops the probe; the
// settings files are skipped on any open error.
package database
