package fields

import (
	"strings"
	"unicode"

	"github.com/matzehuels/jsonapi/pkg/errors"
)

// Key is an immutable, normalized JSON:API member name.
//
// The zero value is the empty (invalid) Key; valid keys are obtained through
// Parse. Key is comparable and safe to use as a map key: two Keys are equal
// exactly when their normalized string forms are equal.
type Key struct {
	name string
}

// Parse validates raw as a JSON:API member name and returns its normalized
// Key. Runs of '-', '_', and ' ' collapse to a single '-'; uppercase letters
// are lowercased with a '-' inserted before them, so camelCase and
// snake_case input normalizes to kebab-case.
//
// Parse fails with an INVALID_MEMBER_NAME error when raw is empty, contains
// a reserved character, or begins or ends with '-', '_', or ' '.
func Parse(raw string) (Key, error) {
	if raw == "" {
		return Key{}, errors.New(errors.CodeInvalidMemberName, "member names cannot be blank")
	}

	runes := []rune(raw)
	last := len(runes) - 1

	var b strings.Builder
	b.Grow(len(raw))

	for i, r := range runes {
		switch {
		case reserved(r):
			return Key{}, errors.New(errors.CodeInvalidMemberName, "member names cannot contain %q", r)
		case r == '-' || r == '_' || r == ' ':
			if i == 0 {
				return Key{}, errors.New(errors.CodeInvalidMemberName, "member names cannot start with %q", r)
			}
			if i == last {
				return Key{}, errors.New(errors.CodeInvalidMemberName, "member names cannot end with %q", r)
			}
			// Collapse separator runs to one '-'. When the separator sits
			// directly before an uppercase letter the uppercase handling
			// below inserts the '-' instead, so emit nothing here.
			if unicode.IsUpper(runes[i+1]) {
				continue
			}
			if out := b.String(); out != "" && out[len(out)-1] == '-' {
				continue
			}
			b.WriteRune('-')
		case unicode.IsUpper(r):
			if out := b.String(); out != "" && out[len(out)-1] != '-' {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return Key{name: b.String()}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// compile-time-constant names in tests and examples.
func MustParse(raw string) Key {
	key, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return key
}

// String returns the normalized member name.
func (k Key) String() string { return k.name }

// IsZero reports whether k is the zero (invalid) Key.
func (k Key) IsZero() bool { return k.name == "" }

// Join combines k with another Key, returning a two-segment Path.
func (k Key) Join(other Key) Path {
	return Path{raw: k.name + "." + other.name}
}

// reserved reports whether r may never appear in a member name.
// The set covers control characters and the URL- and query-significant
// ASCII punctuation the JSON:API specification forbids.
func reserved(r rune) bool {
	if r <= 0x1f || r == 0x7f {
		return true
	}
	switch r {
	case '+', ',', '.', '[', ']',
		'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '/',
		':', ';', '<', '=', '>', '?', '@', '\\', '^', '`',
		'{', '|', '}', '~':
		return true
	}
	return false
}
