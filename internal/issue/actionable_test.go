// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load override database"},
			expected: "failed to load override database",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load override database",
				Resource:  "/home/u/.rustup/settings.toml",
			},
			expected: "failed to load override database: /home/u/.rustup/settings.toml",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "read override database",
				Resource:  "/home/u/.multirust/overrides",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to read override database: /home/u/.multirust/overrides: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewErrorContext().WithOperation("open").WithResource("/x").Wrap(sentinel).BuildError()
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() did not find the cause")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Resource != "/x" {
		t.Errorf("errors.As() = %v, want *ActionableError for /x", err)
	}
}

func TestActionableError_Format(t *testing.T) {
	inner := errors.New("line 3: no toolchain in line")
	err := NewErrorContext().
		WithOperation("load override database").
		WithResource("/h/.multirust/overrides").
		WithSuggestion("Remove the line without a ';'").
		WithSuggestion("Run 'rustup-prompt doctor'").
		Wrap(fmt.Errorf("malformed: %w", inner)).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}

	wantShort := "failed to load override database: /h/.multirust/overrides: malformed: line 3: no toolchain in line\n" +
		"\n  • Remove the line without a ';'" +
		"\n  • Run 'rustup-prompt doctor'"
	if got := ae.Format(false); got != wantShort {
		t.Errorf("Format(false) = %q, want %q", got, wantShort)
	}

	long := ae.Format(true)
	if !strings.Contains(long, "Error chain:\n  1. malformed: line 3") || !strings.Contains(long, "\n  2. line 3: no toolchain in line") {
		t.Errorf("Format(true) missing chain:\n%s", long)
	}
}

func TestErrorContext_BuildErrorRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("/x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestErrorContext_BuildErrorCopiesSuggestions(t *testing.T) {
	c := NewErrorContext().WithOperation("open").WithSuggestion("first")
	first := c.BuildError()
	c.WithSuggestion("second")

	var ae *ActionableError
	if !errors.As(first, &ae) || len(ae.Suggestions) != 1 {
		t.Errorf("earlier BuildError() result changed: %v", first)
	}
}
