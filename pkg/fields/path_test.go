package fields

import (
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantLen int
	}{
		{"authors", "authors", 1},
		{"authors.name", "authors.name", 2},
		{"comments.author.name", "comments.author.name", 3},
		{"publishedAt", "published-at", 1},
		{"comments.createdAt", "comments.created-at", 2},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			path, err := ParsePath(tt.raw)
			if err != nil {
				t.Fatalf("ParsePath(%q) error: %v", tt.raw, err)
			}
			if path.String() != tt.want {
				t.Errorf("String() = %q, want %q", path, tt.want)
			}
			if path.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", path.Len(), tt.wantLen)
			}
		})
	}
}

func TestParsePathRejects(t *testing.T) {
	invalid := []string{"", ".", "a.", ".a", "a..b", "a.b@c", "-a.b"}

	for _, raw := range invalid {
		if _, err := ParsePath(raw); err == nil {
			t.Errorf("ParsePath(%q) succeeded, want error", raw)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	paths := []string{"authors", "authors.name", "a.b.c.d"}

	for _, raw := range paths {
		p := MustParsePath(raw)
		again, err := ParsePath(p.String())
		if err != nil {
			t.Fatalf("ParsePath(%q) error: %v", p.String(), err)
		}
		if p != again {
			t.Errorf("round trip of %q = %q", p, again)
		}
	}
}

func TestPathJoin(t *testing.T) {
	var root Path

	one := root.Join(MustParse("comments"))
	if one.String() != "comments" {
		t.Errorf("root.Join = %q, want comments", one)
	}

	two := one.Join(MustParse("author"))
	if two.String() != "comments.author" {
		t.Errorf("Join = %q, want comments.author", two)
	}

	joined := one.JoinPath(MustParsePath("author.name"))
	if joined.String() != "comments.author.name" {
		t.Errorf("JoinPath = %q, want comments.author.name", joined)
	}

	if got := two.JoinPath(Path{}); got != two {
		t.Errorf("JoinPath(empty) = %q, want %q", got, two)
	}
}

func TestPathKeys(t *testing.T) {
	p := MustParsePath("comments.author")

	keys := p.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys() len = %d, want 2", len(keys))
	}
	if keys[0] != MustParse("comments") || keys[1] != MustParse("author") {
		t.Errorf("Keys() = %v", keys)
	}

	if PathOf(keys...) != p {
		t.Errorf("PathOf(Keys()) = %q, want %q", PathOf(keys...), p)
	}
}

func TestEmptyPath(t *testing.T) {
	var p Path

	if !p.IsZero() {
		t.Error("zero Path is not IsZero")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Keys() != nil {
		t.Errorf("Keys() = %v, want nil", p.Keys())
	}
}
