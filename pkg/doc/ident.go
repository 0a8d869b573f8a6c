package doc

import (
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Identity is the (id, type) pair that identifies a logical resource. Two
// resource representations with the same Identity refer to the same
// resource regardless of which attributes they carry; this equality rule
// backs included-set deduplication and linkage resolution.
type Identity struct {
	ID   string
	Kind fields.Key
}

// Identifier is resource linkage: the minimal representation of a
// resource, without attributes or relationships.
type Identifier struct {
	ID   string
	Kind fields.Key
	Meta value.Map
}

// NewIdentifier returns an identifier for the given resource.
func NewIdentifier(kind fields.Key, id string) Identifier {
	return Identifier{ID: id, Kind: kind}
}

// Identity implements [PrimaryData].
func (i Identifier) Identity() Identity {
	return Identity{ID: i.ID, Kind: i.Kind}
}

// flatten resolves the linkage against the included set. A dangling
// identifier, one with no matching included object, degrades to its bare
// id string rather than failing.
func (i Identifier) flatten(included *ObjectSet) value.Value {
	if obj, ok := included.Get(i.Identity()); ok {
		return obj.flatten(included)
	}
	return value.String(i.ID)
}

// IdentifierBuilder accumulates raw identifier members and validates them
// all at once in Finalize.
type IdentifierBuilder struct {
	id   *string
	kind *string
	meta []rawMember[value.Value]
}

// BuildIdentifier starts a new identifier builder.
func BuildIdentifier() *IdentifierBuilder {
	return &IdentifierBuilder{}
}

// ID sets the identifier's id.
func (b *IdentifierBuilder) ID(id string) *IdentifierBuilder {
	b.id = &id
	return b
}

// Kind sets the identifier's resource type.
func (b *IdentifierBuilder) Kind(kind string) *IdentifierBuilder {
	b.kind = &kind
	return b
}

// Meta adds a meta member.
func (b *IdentifierBuilder) Meta(name string, v value.Value) *IdentifierBuilder {
	b.meta = append(b.meta, rawMember[value.Value]{name, v})
	return b
}

// Finalize validates every accumulated member and produces the
// identifier. The first invalid member aborts; id and kind are required.
func (b *IdentifierBuilder) Finalize() (Identifier, error) {
	if b.id == nil {
		return Identifier{}, errors.MissingField("id")
	}
	if b.kind == nil {
		return Identifier{}, errors.MissingField("kind")
	}
	kind, err := fields.Parse(*b.kind)
	if err != nil {
		return Identifier{}, err
	}
	meta, err := buildMap(b.meta)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{ID: *b.id, Kind: kind, Meta: meta}, nil
}

// rawMember is an unvalidated (name, value) pair accumulated by a builder.
type rawMember[V any] struct {
	name string
	val  V
}

// buildMap parses every accumulated name and produces an ordered object.
func buildMap(members []rawMember[value.Value]) (value.Map, error) {
	var out value.Map
	for _, m := range members {
		key, err := fields.Parse(m.name)
		if err != nil {
			return value.Map{}, err
		}
		out.Set(key, m.val)
	}
	return out, nil
}

// buildLinks parses every accumulated name and produces an ordered link
// map.
func buildLinks(members []rawMember[Link]) (Links, error) {
	var out Links
	for _, m := range members {
		key, err := fields.Parse(m.name)
		if err != nil {
			return Links{}, err
		}
		out.Set(key, m.val)
	}
	return out, nil
}
