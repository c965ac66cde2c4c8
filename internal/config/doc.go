// SPDX-License-Identifier: MPL-2.0

// Package config handles rustup-prompt configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from config.cue in ConfigDir ($XDG_CONFIG_HOME/rustup-prompt
// on Linux, ~/Library/Application Support/rustup-prompt on macOS, %APPDATA%\rustup-prompt
// on Windows) and validated against the embedded #Config schema. Every key can also be set
// through a RUSTUP_PROMPT_* environment variable. A missing file is not an error.
package config
