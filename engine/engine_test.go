package engine

import (
	"testing"

	"github.com/coregx/hematch/fhe/plaintext"
)

func matches(t *testing.T, pattern, content string) uint8 {
	t.Helper()
	ct, err := HasMatch(plaintext.ServerKey{}, plaintext.EncryptContent(content), pattern)
	if err != nil {
		t.Fatalf("HasMatch(%q, %q) error = %v", pattern, content, err)
	}
	return plaintext.Decrypt(ct)
}

func TestHasMatchScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		content string
		want    uint8
	}{
		{"/a/", "bac", 1},
		{"/a/", "xyz", 0},
		{"/^ab|cd$/", "abxx", 1},
		{"/^ab|cd$/", "xxcd", 1},
		{"/^ab|cd$/", "xxxx", 0},
		{"/w(i|a)ll/", "the will is valid", 1},
		{"/w(i|a)ll/", "the wall is valid", 1},
		{"/w(i|a)ll/", "the well is valid", 0},
		{"/[^ab]/", "aa", 0},
		{"/[^ab]/", "abc", 1},
		{"/a{2,3}/", "baaab", 1},
		{"/a{2,3}/", "ba", 0},
		{"/abc/i", "xxAbC", 1},
		{"/abc/i", "xxAbD", 0},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"_vs_"+tt.content, func(t *testing.T) {
			if got := matches(t, tt.pattern, tt.content); got != tt.want {
				t.Errorf("HasMatch(%q, %q) = %d, want %d", tt.pattern, tt.content, got, tt.want)
			}
		})
	}
}

func TestCheckReportsPathCount(t *testing.T) {
	plan, err := Check("/a/", 3, DefaultConfig())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if plan.Len() != 3 {
		t.Errorf("Check().Len() = %d, want 3", plan.Len())
	}
}

func TestCheckZeroPathsWhenPatternCannotFit(t *testing.T) {
	plan, err := Check("/abcdef/", 2, DefaultConfig())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if plan.Len() != 0 {
		t.Errorf("Check().Len() = %d, want 0", plan.Len())
	}
}

func TestCheckSurfacesSyntaxError(t *testing.T) {
	if _, err := Check("/a{3,1}/", 5, DefaultConfig()); err == nil {
		t.Error("Check() error = nil, want error for malformed quantifier")
	}
}

func TestEncryptASCIIRejectsNonASCII(t *testing.T) {
	_, err := EncryptASCII(plaintext.Backend{}, "caf\xe9")
	if err == nil {
		t.Fatal("EncryptASCII() error = nil, want error for non-ASCII byte")
	}
}

func TestBackendRoundTripThroughHasMatch(t *testing.T) {
	backend := plaintext.Backend{}
	content, err := EncryptASCII(backend, "hello world")
	if err != nil {
		t.Fatalf("EncryptASCII() error = %v", err)
	}
	result, err := HasMatch(backend.ServerKey(), content, "/world/")
	if err != nil {
		t.Fatalf("HasMatch() error = %v", err)
	}
	if Decrypt(backend, result) != 1 {
		t.Error("Decrypt(HasMatch(/world/, \"hello world\")) = 0, want 1")
	}
}
