package query

import (
	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Builder accumulates raw query components and validates them all at
// Build time, failing on the first entry that is not a valid member name
// or path.
//
//	q, err := query.NewBuilder().
//	    Fields("articles", "title", "body").
//	    Include("author").
//	    Sort("published-at", query.Desc).
//	    Build()
type Builder struct {
	fields  []rawFieldset
	filter  []rawFilter
	include []string
	page    *Page
	sort    []rawSort
}

type rawFieldset struct {
	kind  string
	names []string
}

type rawFilter struct {
	path string
	val  value.Value
}

type rawSort struct {
	field     string
	direction Direction
}

// NewBuilder returns an empty query builder.
func NewBuilder() *Builder { return &Builder{} }

// Fields records a sparse fieldset for a resource type.
func (b *Builder) Fields(kind string, names ...string) *Builder {
	b.fields = append(b.fields, rawFieldset{kind: kind, names: names})
	return b
}

// Filter records a filter constraint for a field path.
func (b *Builder) Filter(path string, val value.Value) *Builder {
	b.filter = append(b.filter, rawFilter{path: path, val: val})
	return b
}

// FilterString records a string-valued filter constraint.
func (b *Builder) FilterString(path, val string) *Builder {
	return b.Filter(path, value.String(val))
}

// Include records a relationship path to include.
func (b *Builder) Include(path string) *Builder {
	b.include = append(b.include, path)
	return b
}

// Page records pagination parameters. A zero number normalizes to 1; a
// zero size means unspecified.
func (b *Builder) Page(number, size uint64) *Builder {
	b.page = NewPage(number, size)
	return b
}

// Sort records a sort instruction.
func (b *Builder) Sort(field string, direction Direction) *Builder {
	b.sort = append(b.sort, rawSort{field: field, direction: direction})
	return b
}

// Build validates every accumulated entry and produces an immutable Query.
// The first invalid entry aborts the build.
func (b *Builder) Build() (*Query, error) {
	q := New()

	for _, fs := range b.fields {
		kind, err := fields.Parse(fs.kind)
		if err != nil {
			return nil, err
		}
		set := &Fieldset{}
		for _, name := range fs.names {
			key, err := fields.Parse(name)
			if err != nil {
				return nil, err
			}
			set.Add(key)
		}
		q.Fields.Set(kind, set)
	}

	for _, f := range b.filter {
		path, err := fields.ParsePath(f.path)
		if err != nil {
			return nil, err
		}
		q.Filter.Set(path, f.val)
	}

	q.Include = collections.Set[fields.Path]{}
	for _, raw := range b.include {
		path, err := fields.ParsePath(raw)
		if err != nil {
			return nil, err
		}
		q.Include.Add(path)
	}

	for _, s := range b.sort {
		field, err := fields.ParsePath(s.field)
		if err != nil {
			return nil, err
		}
		q.Sort.Add(Sort{Field: field, Direction: s.direction})
	}

	q.Page = b.page

	return q, nil
}
