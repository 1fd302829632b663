package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reHex8  = regexp.MustCompile(`^[a-f0-9]{8}$`)
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewSlug_Format(t *testing.T) {
	got := NewSlug()

	if len(got) != 8 {
		t.Fatalf("length = %d, want 8 (got=%q)", len(got), got)
	}
	if !reHex8.MatchString(got) {
		t.Fatalf("not 8-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 4 {
		t.Fatalf("decoded bytes = %d, want 4", len(b))
	}
}

func TestNewSlug_MostlyUnique(t *testing.T) {
	// 4 random bytes can collide, but not within a small sample.
	const n = 100
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		s := NewSlug()
		if _, ok := seen[s]; ok {
			t.Fatalf("duplicate slug after %d iterations: %q", i, s)
		}
		seen[s] = struct{}{}
	}
}
