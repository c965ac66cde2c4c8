// SPDX-License-Identifier: MPL-2.0

// Package types holds the small typed primitives shared across rustup-prompt.
// Each type carries its own validation so that raw strings and ints are checked
// once, at the boundary where they enter the program.
package types
