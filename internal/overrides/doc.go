// SPDX-License-Identifier: MPL-2.0

// Package overrides loads the per-user override database that maps directories
// to toolchain names.
//
// Two on-disk formats exist. The legacy multirust file (~/.multirust/overrides)
// holds one "<path>;<toolchain>" record per line. The rustup settings file
// (~/.rustup/settings.toml, or the older ~/.multirust/settings.toml) is a TOML
// document with an [overrides] table. Both load into the same immutable Store,
// which answers exact path lookups and nothing else: keys are never cleaned or
// case-folded.
package overrides
