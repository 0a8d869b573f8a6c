package doc

import (
	"iter"

	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

var keyID = fields.MustParse("id")

// Object is a full resource object: identity plus attributes,
// relationships, links, and meta.
type Object struct {
	ID            string
	Kind          fields.Key
	Attributes    value.Map
	Relationships Relationships
	Links         Links
	Meta          value.Map
}

// Relationships is an ordered map of relationship name to relationship.
type Relationships = collections.Map[fields.Key, Relationship]

// NewObject returns an object with the given identity and no members.
func NewObject(kind fields.Key, id string) Object {
	return Object{ID: id, Kind: kind}
}

// Identity implements [PrimaryData].
func (o Object) Identity() Identity {
	return Identity{ID: o.ID, Kind: o.Kind}
}

// flatten produces a single denormalized object: the id, every attribute,
// and every relationship recursively flattened against the included set.
func (o Object) flatten(included *ObjectSet) value.Value {
	out := value.NewMap()
	out.Set(keyID, value.String(o.ID))
	for name, v := range o.Attributes.All() {
		out.Set(name, v)
	}
	for name, rel := range o.Relationships.All() {
		out.Set(name, rel.Data.flatten(included))
	}
	return out
}

// ObjectSet is an ordered set of objects deduplicated by [Identity].
// Iteration order is first-insertion order. The zero value is an empty set
// ready for use.
type ObjectSet struct {
	order []Identity
	items map[Identity]Object
}

// Insert adds obj to the set. It reports whether the object was newly
// added; an object whose identity is already present is discarded and the
// first representation kept.
func (s *ObjectSet) Insert(obj Object) bool {
	id := obj.Identity()
	if _, ok := s.items[id]; ok {
		return false
	}
	if s.items == nil {
		s.items = make(map[Identity]Object)
	}
	s.items[id] = obj
	s.order = append(s.order, id)
	return true
}

// Get returns the object stored for the given identity.
func (s *ObjectSet) Get(id Identity) (Object, bool) {
	obj, ok := s.items[id]
	return obj, ok
}

// Has reports whether an object with the given identity is present.
func (s *ObjectSet) Has(id Identity) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of objects in the set.
func (s *ObjectSet) Len() int { return len(s.order) }

// All iterates the objects in first-insertion order.
func (s *ObjectSet) All() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, id := range s.order {
			if !yield(s.items[id]) {
				return
			}
		}
	}
}

// Merge inserts every object from other, preserving other's order for
// identities not already present. Useful when independent renders are
// combined afterwards.
func (s *ObjectSet) Merge(other *ObjectSet) {
	for obj := range other.All() {
		s.Insert(obj)
	}
}

// ObjectBuilder accumulates raw resource members and validates them all
// at once in Finalize.
type ObjectBuilder struct {
	id            *string
	kind          *string
	attributes    []rawMember[value.Value]
	relationships []rawMember[Relationship]
	links         []rawMember[Link]
	meta          []rawMember[value.Value]
}

// BuildObject starts a new resource object builder.
func BuildObject() *ObjectBuilder {
	return &ObjectBuilder{}
}

// ID sets the object's id.
func (b *ObjectBuilder) ID(id string) *ObjectBuilder {
	b.id = &id
	return b
}

// Kind sets the object's resource type.
func (b *ObjectBuilder) Kind(kind string) *ObjectBuilder {
	b.kind = &kind
	return b
}

// Attribute adds an attribute member.
func (b *ObjectBuilder) Attribute(name string, v value.Value) *ObjectBuilder {
	b.attributes = append(b.attributes, rawMember[value.Value]{name, v})
	return b
}

// Relationship adds a relationship member.
func (b *ObjectBuilder) Relationship(name string, rel Relationship) *ObjectBuilder {
	b.relationships = append(b.relationships, rawMember[Relationship]{name, rel})
	return b
}

// Link adds a link member.
func (b *ObjectBuilder) Link(name string, link Link) *ObjectBuilder {
	b.links = append(b.links, rawMember[Link]{name, link})
	return b
}

// Meta adds a meta member.
func (b *ObjectBuilder) Meta(name string, v value.Value) *ObjectBuilder {
	b.meta = append(b.meta, rawMember[value.Value]{name, v})
	return b
}

// Finalize validates every accumulated member and produces the object.
// The first invalid member aborts; id and kind are required.
func (b *ObjectBuilder) Finalize() (Object, error) {
	if b.id == nil {
		return Object{}, errors.MissingField("id")
	}
	if b.kind == nil {
		return Object{}, errors.MissingField("kind")
	}
	kind, err := fields.Parse(*b.kind)
	if err != nil {
		return Object{}, err
	}

	obj := Object{ID: *b.id, Kind: kind}
	if obj.Attributes, err = buildMap(b.attributes); err != nil {
		return Object{}, err
	}
	for _, m := range b.relationships {
		key, err := fields.Parse(m.name)
		if err != nil {
			return Object{}, err
		}
		obj.Relationships.Set(key, m.val)
	}
	if obj.Links, err = buildLinks(b.links); err != nil {
		return Object{}, err
	}
	if obj.Meta, err = buildMap(b.meta); err != nil {
		return Object{}, err
	}
	return obj, nil
}
