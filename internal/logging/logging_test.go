// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rustup-prompt/rustup-prompt/internal/config"

	"github.com/charmbracelet/log"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   config.LogLevel
		want log.Level
	}{
		{config.LogLevelDebug, log.DebugLevel},
		{config.LogLevelInfo, log.InfoLevel},
		{config.LogLevelWarn, log.WarnLevel},
		{config.LogLevelError, log.ErrorLevel},
		{"bogus", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := Level(tt.in); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, config.LogLevelWarn)

	logger.Debug("probe", "path", "/h/.multirust/overrides")
	logger.Warn("malformed database", "path", "/h/.rustup/settings.toml")

	out := buf.String()
	if strings.Contains(out, "probe") {
		t.Errorf("debug message written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "malformed database") {
		t.Errorf("warn message missing:\n%s", out)
	}
	if !strings.Contains(out, config.AppName) {
		t.Errorf("prefix missing:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	// Must not panic and must not write anywhere observable.
	Discard().Error("ignored")
}
