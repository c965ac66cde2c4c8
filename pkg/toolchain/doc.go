// SPDX-License-Identifier: MPL-2.0

// Package toolchain normalizes rustup toolchain names into the short form shown
// in shell prompts.
//
// A full toolchain name looks like "nightly-2016-06-05-x86_64-unknown-linux-gnu":
// a channel, an optional release date, and a platform triple. Normalization keeps
// the channel and the date and drops the triple. Names that do not start with a
// known channel are custom toolchains and are returned unchanged.
package toolchain
