// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so candidate database locations stay
// typed from the home directory down to the file that gets opened.
package fspath

import (
	"fmt"
	"path/filepath"

	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

// Join wraps filepath.Join for FilesystemPath segments.
func Join(base types.FilesystemPath, elem ...types.FilesystemPath) types.FilesystemPath {
	parts := make([]string, 0, 1+len(elem))
	parts = append(parts, string(base))
	for _, e := range elem {
		parts = append(parts, string(e))
	}
	return types.FilesystemPath(filepath.Join(parts...))
}

// JoinStr wraps filepath.Join with a typed base and raw string segments, such as
// a computed file name.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Clean wraps filepath.Clean.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Abs wraps filepath.Abs.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// IsRoot reports whether p has no parent, i.e. filepath.Dir leaves it unchanged.
func IsRoot(p types.FilesystemPath) bool {
	return Dir(p) == Clean(p)
}
