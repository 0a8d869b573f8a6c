package render

import (
	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/query"
)

// Resource is the capability a type needs to be rendered as a JSON:API
// resource.
type Resource interface {
	// Kind returns the resource type. It is constant per implementing
	// type.
	Kind() fields.Key

	// ID returns the resource's identifier string.
	ID() string

	// ToIdent builds the resource's minimal linkage representation.
	ToIdent(ctx *Context) (doc.Identifier, error)

	// ToObject builds the full resource object, consulting ctx for
	// sparse fieldsets and relationship expansion.
	ToObject(ctx *Context) (doc.Object, error)
}

// Object renders one resource as a document of full resource objects. A
// nil resource renders a document whose data member is null.
func Object(res Resource, qry *query.Query) (*doc.Document[doc.Object], error) {
	if res == nil {
		return doc.OK(doc.Member[doc.Object](nil)), nil
	}

	var included doc.ObjectSet
	ctx := NewContext(res.Kind(), qry, &included)
	obj, err := res.ToObject(ctx)
	if err != nil {
		return nil, err
	}

	d := doc.OK(doc.Member(&obj))
	d.Included = included
	return d, nil
}

// Collection renders a slice of resources as a document of full resource
// objects. All resources share one included set.
func Collection[T Resource](items []T, qry *query.Query) (*doc.Document[doc.Object], error) {
	var included doc.ObjectSet
	objects := make([]doc.Object, 0, len(items))

	for _, item := range items {
		ctx := NewContext(item.Kind(), qry, &included)
		obj, err := item.ToObject(ctx)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	d := doc.OK(doc.Collection(objects))
	d.Included = included
	return d, nil
}

// Ident renders one resource as a document of bare resource linkage. The
// document's included set is never populated. A nil resource renders a
// document whose data member is null.
func Ident(res Resource, qry *query.Query) (*doc.Document[doc.Identifier], error) {
	if res == nil {
		return doc.OK(doc.Member[doc.Identifier](nil)), nil
	}

	var included doc.ObjectSet
	ctx := NewContext(res.Kind(), qry, &included)
	ident, err := res.ToIdent(ctx)
	if err != nil {
		return nil, err
	}
	return doc.OK(doc.Member(&ident)), nil
}

// Idents renders a slice of resources as a document of bare resource
// linkage.
func Idents[T Resource](items []T, qry *query.Query) (*doc.Document[doc.Identifier], error) {
	var included doc.ObjectSet
	idents := make([]doc.Identifier, 0, len(items))

	for _, item := range items {
		ctx := NewContext(item.Kind(), qry, &included)
		ident, err := item.ToIdent(ctx)
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
	}
	return doc.OK(doc.Collection(idents)), nil
}

// HasOne renders a to-one relationship named key under ctx. The target's
// linkage is always rendered; the full object is rendered and added to
// the included set only when the forked context's path is named by the
// query's include set. A nil target yields the empty to-one relationship.
func HasOne(ctx *Context, key fields.Key, related Resource) (doc.Relationship, error) {
	if related == nil {
		return doc.ToOne(nil), nil
	}

	child := ctx.Fork(related.Kind(), key)
	ident, err := related.ToIdent(child)
	if err != nil {
		return doc.Relationship{}, err
	}
	if err := includeTarget(child, related); err != nil {
		return doc.Relationship{}, err
	}
	return doc.ToOne(&ident), nil
}

// HasMany renders a to-many relationship named key under ctx, with the
// same expansion rule as [HasOne] applied per target.
func HasMany[T Resource](ctx *Context, key fields.Key, related []T) (doc.Relationship, error) {
	idents := make([]doc.Identifier, 0, len(related))

	for _, item := range related {
		child := ctx.Fork(item.Kind(), key)
		ident, err := item.ToIdent(child)
		if err != nil {
			return doc.Relationship{}, err
		}
		if err := includeTarget(child, item); err != nil {
			return doc.Relationship{}, err
		}
		idents = append(idents, ident)
	}
	return doc.ToMany(idents), nil
}

// includeTarget expands the relationship target into the shared included
// set when the child context's path is included by the query.
func includeTarget(child *Context, related Resource) error {
	if !child.Included() {
		return nil
	}
	obj, err := related.ToObject(child)
	if err != nil {
		return err
	}
	child.Include(obj)
	return nil
}
