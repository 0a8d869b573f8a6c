package doc

import (
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Relationship describes how a resource relates to others: resource
// linkage plus optional links and meta.
type Relationship struct {
	Data  Data[Identifier]
	Links Links
	Meta  value.Map
}

// ToOne returns a to-one relationship pointing at the given identifier.
// A nil identifier is the empty to-one relationship.
func ToOne(ident *Identifier) Relationship {
	return Relationship{Data: Member(ident)}
}

// ToMany returns a to-many relationship pointing at the given
// identifiers.
func ToMany(idents []Identifier) Relationship {
	return Relationship{Data: Collection(idents)}
}

// RelationshipBuilder accumulates raw relationship members and validates
// them all at once in Finalize.
type RelationshipBuilder struct {
	data  *Data[Identifier]
	links []rawMember[Link]
	meta  []rawMember[value.Value]
}

// BuildRelationship starts a new relationship builder.
func BuildRelationship() *RelationshipBuilder {
	return &RelationshipBuilder{}
}

// Data sets the relationship's resource linkage.
func (b *RelationshipBuilder) Data(data Data[Identifier]) *RelationshipBuilder {
	b.data = &data
	return b
}

// Link adds a link member.
func (b *RelationshipBuilder) Link(name string, link Link) *RelationshipBuilder {
	b.links = append(b.links, rawMember[Link]{name, link})
	return b
}

// Meta adds a meta member.
func (b *RelationshipBuilder) Meta(name string, v value.Value) *RelationshipBuilder {
	b.meta = append(b.meta, rawMember[value.Value]{name, v})
	return b
}

// Finalize validates every accumulated member and produces the
// relationship. Data is required.
func (b *RelationshipBuilder) Finalize() (Relationship, error) {
	if b.data == nil {
		return Relationship{}, errors.MissingField("data")
	}
	links, err := buildLinks(b.links)
	if err != nil {
		return Relationship{}, err
	}
	meta, err := buildMap(b.meta)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{Data: *b.data, Links: links, Meta: meta}, nil
}
