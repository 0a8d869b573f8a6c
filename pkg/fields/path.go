package fields

import "strings"

// Path is an immutable, dot-separated sequence of Keys describing a
// traversal from a root resource through its relationships
// (e.g. "comments.author").
//
// The zero value is the empty Path, which denotes the root itself. Path is
// comparable: its canonical string form is its identity.
type Path struct {
	raw string
}

// ParsePath splits raw on '.' and parses every segment as a Key. The first
// invalid segment aborts the parse.
func ParsePath(raw string) (Path, error) {
	var b strings.Builder
	b.Grow(len(raw))

	for i, segment := range strings.Split(raw, ".") {
		key, err := Parse(segment)
		if err != nil {
			return Path{}, err
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(key.name)
	}

	return Path{raw: b.String()}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(raw string) Path {
	path, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return path
}

// PathOf builds a Path from keys. An empty call yields the root Path.
func PathOf(keys ...Key) Path {
	switch len(keys) {
	case 0:
		return Path{}
	case 1:
		return Path{raw: keys[0].name}
	}

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(key.name)
	}
	return Path{raw: b.String()}
}

// String returns the keys joined by '.'.
func (p Path) String() string { return p.raw }

// IsZero reports whether p is the empty (root) Path.
func (p Path) IsZero() bool { return p.raw == "" }

// Len returns the number of keys in the path.
func (p Path) Len() int {
	if p.raw == "" {
		return 0
	}
	return strings.Count(p.raw, ".") + 1
}

// Keys returns the path's segments in order. The returned keys are valid by
// construction; mutating the slice does not affect p.
func (p Path) Keys() []Key {
	if p.raw == "" {
		return nil
	}
	parts := strings.Split(p.raw, ".")
	keys := make([]Key, len(parts))
	for i, part := range parts {
		keys[i] = Key{name: part}
	}
	return keys
}

// Join returns a new Path with key appended.
func (p Path) Join(key Key) Path {
	if p.raw == "" {
		return Path{raw: key.name}
	}
	return Path{raw: p.raw + "." + key.name}
}

// JoinPath returns a new Path with all of other's keys appended.
func (p Path) JoinPath(other Path) Path {
	switch {
	case p.raw == "":
		return other
	case other.raw == "":
		return p
	}
	return Path{raw: p.raw + "." + other.raw}
}
