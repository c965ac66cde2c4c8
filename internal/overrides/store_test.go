// SPDX-License-Identifier: MPL-2.0

package overrides

import "testing"

func TestStore_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var s *Store
	if _, ok := s.Lookup("/"); ok {
		t.Error("nil store reported a hit")
	}
	if s.Len() != 0 {
		t.Errorf("nil store Len() = %d, want 0", s.Len())
	}
	if s.Paths() != nil {
		t.Errorf("nil store Paths() = %v, want nil", s.Paths())
	}
	if s.Format() != 0 {
		t.Errorf("nil store Format() = %v, want 0", s.Format())
	}
}

func TestStore_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var s Store
	if _, ok := s.Lookup("/"); ok {
		t.Error("zero store reported a hit")
	}
	if s.Len() != 0 {
		t.Errorf("zero store Len() = %d, want 0", s.Len())
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    Format
		want string
	}{
		{FormatPlain, "plain"},
		{FormatTOML, "toml"},
		{Format(9), "format(9)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.f), got, tt.want)
		}
	}
}

func TestMalformedDatabaseError_Message(t *testing.T) {
	t.Parallel()

	err := &MalformedDatabaseError{Format: FormatTOML, Key: "/a", Reason: "value is a int64, not a string"}
	want := `malformed toml override database: key "/a": value is a int64, not a string`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
