// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const testEnvKey = "RUSTUP_PROMPT_TESTUTIL_PROBE"

func TestMustSetenv_RestoresUnset(t *testing.T) {
	t.Cleanup(MustUnsetenv(t, testEnvKey))

	restore := MustSetenv(t, testEnvKey, "value")
	if got := os.Getenv(testEnvKey); got != "value" {
		t.Errorf("env = %q, want value", got)
	}
	restore()
	if _, ok := os.LookupEnv(testEnvKey); ok {
		t.Error("env should be unset after restore")
	}
}

func TestMustSetenv_RestoresPrevious(t *testing.T) {
	t.Cleanup(MustSetenv(t, testEnvKey, "original"))

	restore := MustSetenv(t, testEnvKey, "changed")
	restore()
	if got := os.Getenv(testEnvKey); got != "original" {
		t.Errorf("env = %q, want original", got)
	}
}

func TestMustUnsetenv_Restores(t *testing.T) {
	t.Cleanup(MustSetenv(t, testEnvKey, "keep"))

	restore := MustUnsetenv(t, testEnvKey)
	if _, ok := os.LookupEnv(testEnvKey); ok {
		t.Error("env should be unset")
	}
	restore()
	if got := os.Getenv(testEnvKey); got != "keep" {
		t.Errorf("env = %q, want keep", got)
	}
}

func TestMustChdir(t *testing.T) {
	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	restore := MustChdir(t, dir)
	wd, _ := os.Getwd()
	if wd != dir {
		t.Errorf("wd = %q, want %q", wd, dir)
	}
	restore()
	wd, _ = os.Getwd()
	if wd != original {
		t.Errorf("after restore wd = %q, want %q", wd, original)
	}
}

func TestMustWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".rustup", "settings.toml")
	MustWriteFile(t, path, "[overrides]\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "[overrides]\n" {
		t.Errorf("content = %q", data)
	}
}

func TestSetHomeDir(t *testing.T) {
	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	original := os.Getenv(key)
	dir := t.TempDir()

	restore := SetHomeDir(t, dir)
	if got := os.Getenv(key); got != dir {
		t.Errorf("%s = %q, want %q", key, got, dir)
	}
	restore()
	if got := os.Getenv(key); got != original {
		t.Errorf("after restore %s = %q, want %q", key, got, original)
	}
}
