package hmerr

import (
	"errors"
	"testing"
)

func TestErrorsIsSentinel(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"syntax", NewSyntax("/(/", 1, "unclosed group"), ErrPatternSyntax},
		{"unsupported", NewUnsupported("Not must wrap a single byte"), ErrUnsupportedConstruct},
		{"non-ascii", NewNonASCII(3, 0x80), ErrNonASCIIContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.wantErr)
			}
			if tt.err.Error() == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}
