// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rustup-prompt/rustup-prompt/pkg/fspath"
	"github.com/rustup-prompt/rustup-prompt/pkg/types"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base types.FilesystemPath
		elem []types.FilesystemPath
		want string
	}{
		{name: "base only", base: "home", want: filepath.Join("home")},
		{name: "segments", base: "home", elem: []types.FilesystemPath{".multirust", "overrides"}, want: filepath.Join("home", ".multirust", "overrides")},
		{name: "cleans dot segments", base: "home/u/", elem: []types.FilesystemPath{"./.rustup", "../.rustup"}, want: filepath.Join("home/u", ".rustup")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fspath.Join(tt.base, tt.elem...); got != types.FilesystemPath(tt.want) {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("home"), ".rustup", "settings.toml")
	want := types.FilesystemPath(filepath.Join("home", ".rustup", "settings.toml"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	got := fspath.Dir(types.FilesystemPath("home/user/project"))
	want := types.FilesystemPath(filepath.Dir("home/user/project"))
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath("home/user/../user/./project/"))
	want := types.FilesystemPath(filepath.Clean("home/user/../user/./project/"))
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("."))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	wantRaw, _ := filepath.Abs(".")
	if got != types.FilesystemPath(wantRaw) {
		t.Errorf("Abs() = %q, want %q", got, wantRaw)
	}
}

func TestIsRoot(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("POSIX roots only")
	}

	tests := []struct {
		path types.FilesystemPath
		want bool
	}{
		{"/", true},
		{"/home", false},
		{"/home/user/", false},
	}
	for _, tt := range tests {
		if got := fspath.IsRoot(tt.path); got != tt.want {
			t.Errorf("IsRoot(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
