// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rustup-prompt/rustup-prompt/internal/config"

	"github.com/spf13/afero"
)

// stubConfig is a config.Provider returning a fixed result.
type stubConfig struct {
	cfg *config.Config
	err error
}

func (s stubConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.cfg == nil {
		return config.DefaultConfig(), nil
	}
	cp := *s.cfg
	return &cp, nil
}

type harness struct {
	fs     afero.Fs
	stdout bytes.Buffer
	stderr bytes.Buffer
	cfg    stubConfig
	wd     string
	wdErr  error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		fs: afero.NewMemMapFs(),
		cfg: stubConfig{cfg: &config.Config{
			Home:     "/home/u",
			LogLevel: config.LogLevelWarn,
		}},
		wd: "/home/u",
	}
}

func (h *harness) write(t *testing.T, rel, content string) {
	t.Helper()
	h.writeAbs(t, filepath.Join("/home/u", rel), content)
}

func (h *harness) writeAbs(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(h.fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	app := NewApp(Dependencies{
		Config: h.cfg,
		Fs:     h.fs,
		Getwd: func() (string, error) {
			if h.wdErr != nil {
				return "", h.wdErr
			}
			return h.wd, nil
		},
		Stdout: &h.stdout,
		Stderr: &h.stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	return root.ExecuteContext(context.Background())
}

var errNoWd = errors.New("getwd: no such file or directory")
