package fields

import (
	"testing"

	"github.com/matzehuels/jsonapi/pkg/errors"
)

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"articles", "articles"},
		{"someFieldName", "some-field-name"},
		{"shoppingCarts", "shopping-carts"},
		{"notification_settings", "notification-settings"},
		{"published at", "published-at"},
		{"published-at", "published-at"},
		{"published--at", "published-at"},
		{"published_-at", "published-at"},
		{"published_At", "published-at"},
		{"Articles", "articles"},
		{"HTTPStatus", "h-t-t-p-status"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			key, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.raw, err)
			}
			if key.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, key.String(), tt.want)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	sources := []string{
		"articles", "comments", "likes",
		"notification_settings", "shoppingCarts", "users",
		"published at", "created--at",
	}

	for _, raw := range sources {
		first, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", raw, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", first.String(), err)
		}
		if first != second {
			t.Errorf("Parse(Parse(%q)) = %q, want %q", raw, second, first)
		}
	}
}

func TestParseRejects(t *testing.T) {
	invalid := []string{
		"",
		".",
		"a.b",
		"-a",
		"a-",
		"_a",
		"a_",
		" a",
		"a ",
		"a_b ",
		"a@b",
		"a/b",
		"a[b]",
		"a,b",
		"a+b",
		"a\\b",
		"a`b",
		"a\x00b",
		"a\x1fb",
	}

	for _, raw := range invalid {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		} else if !errors.Is(err, errors.CodeInvalidMemberName) {
			t.Errorf("Parse(%q) code = %v, want INVALID_MEMBER_NAME", raw, errors.GetCode(err))
		}
	}
}

func TestKeyComparable(t *testing.T) {
	a := MustParse("someFieldName")
	b := MustParse("some-field-name")

	if a != b {
		t.Errorf("normalized keys differ: %q vs %q", a, b)
	}

	seen := map[Key]bool{a: true}
	if !seen[b] {
		t.Error("equal keys do not collide as map keys")
	}
}

func TestKeyJoin(t *testing.T) {
	posts := MustParse("posts")
	comments := MustParse("comments")

	path := posts.Join(comments)
	if path.String() != "posts.comments" {
		t.Errorf("Join = %q, want posts.comments", path)
	}
}
