// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Environment helpers (MustSetenv, MustUnsetenv, SetHomeDir) return a restore
// function meant for t.Cleanup. Filesystem helpers (MustChdir, MustMkdirAll,
// MustWriteFile) fail the test immediately.
package testutil
