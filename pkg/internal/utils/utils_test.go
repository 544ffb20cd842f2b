package utils_test

import (
	"strings"
	"testing"

	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	a := utils.GenerateUniqueHash()
	b := utils.GenerateUniqueHash()

	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatalf("expected distinct hashes, got %q twice", a)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"abc-def_123", "a", "UPPER", "0", strings.Repeat("x", 256)}
	for _, id := range valid {
		if !utils.IsValidIdentifier(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}

	invalid := []string{"", "abc def", "tab\tid", "slash/id", "dot.id", "ünicode"}
	for _, id := range invalid {
		if utils.IsValidIdentifier(id) {
			t.Errorf("expected %q to be invalid", id)
		}
	}
}

func TestInferMimeType(t *testing.T) {
	cases := map[string]string{
		"report.json": "application/json",
		"image.png":   "image/png",
		"noext":       "application/octet-stream",
		"weird.zzz9":  "application/octet-stream",
	}
	for name, want := range cases {
		got := utils.InferMimeType(name)
		if !strings.HasPrefix(got, want) {
			t.Errorf("InferMimeType(%q) = %q, want prefix %q", name, got, want)
		}
	}
}
