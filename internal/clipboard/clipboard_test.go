package clipboard

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "a\nb", "a\nb"},
		{"bom", "\ufeffWEBVTT", "WEBVTT"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr kept", "a\rb", "a\rb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestWriteAllRejectsEmpty(t *testing.T) {
	if err := WriteAll(""); err == nil {
		t.Fatal("expected error for empty text")
	}
}
