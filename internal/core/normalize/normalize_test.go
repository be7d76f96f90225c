package normalize

import (
	"strings"
	"testing"
)

func TestCanon_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"spaces collapse", "hello    world", "hello world"},
		{"tabs collapse to space", "hello\t\tworld", "hello world"},
		{"leading trailing trimmed", "  hello world  ", "hello world"},
		{"newline run keeps newline", "para one\n\n\npara two", "para one\npara two"},
		{"crlf counts as newline", "a\r\nb", "a\nb"},
		{"mixed space then newline keeps newline", "a \n b", "a\nb"},
		{"case preserved", "Hello WORLD", "Hello WORLD"},
		{"empty", "", ""},
		{"only whitespace", "  \n\t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Canon(tc.in); got != tc.want {
				t.Fatalf("Canon(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanon_RepairsInvalidUTF8(t *testing.T) {
	t.Parallel()

	in := "ok\xff\xfe text"
	got := Canon(in)
	if strings.ContainsRune(got, '�') {
		t.Fatalf("invalid bytes should be dropped, not replaced: %q", got)
	}
	if got != "ok text" {
		t.Fatalf("Canon(%q) = %q, want %q", in, got, "ok text")
	}
}

func TestContentHash_WhitespaceEquivalentTextsShareHash(t *testing.T) {
	t.Parallel()

	a := ContentHash("hello   world")
	b := ContentHash("  hello world ")
	if a != b {
		t.Fatalf("whitespace-equivalent texts should share a hash: %s vs %s", a, b)
	}

	c := ContentHash("hello\nworld")
	if c == a {
		t.Fatalf("newline-separated text must hash differently from space-separated")
	}
}

func TestContentHash_Shape(t *testing.T) {
	t.Parallel()

	h := ContentHash("sample")
	if len(h) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(h))
	}
	if h != strings.ToLower(h) {
		t.Fatalf("hash must be lowercase hex: %s", h)
	}
}

func TestContentHash_CaseSensitive(t *testing.T) {
	t.Parallel()

	if ContentHash("Hello") == ContentHash("hello") {
		t.Fatalf("case differences must produce distinct hashes")
	}
}
