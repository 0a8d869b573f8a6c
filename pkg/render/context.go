package render

import (
	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/query"
)

// Context carries the state of one render: the shared included set, the
// resource type being rendered, the relationship path from the root to
// here, and the active query, if any.
//
// A context is forked once per relationship hop; all forks share the
// parent's included set and query.
type Context struct {
	incl *doc.ObjectSet
	kind fields.Key
	path fields.Path
	qry  *query.Query
}

// NewContext returns a root context: empty path, rendering the given
// resource type against the given query. The query may be nil; included
// must not be.
func NewContext(kind fields.Key, qry *query.Query, included *doc.ObjectSet) *Context {
	return &Context{incl: included, kind: kind, qry: qry}
}

// Kind returns the resource type being rendered.
func (c *Context) Kind() fields.Key { return c.kind }

// Path returns the relationship path from the root resource to this
// context. It is empty at the root.
func (c *Context) Path() fields.Path { return c.path }

// Query returns the active query, or nil.
func (c *Context) Query() *query.Query { return c.qry }

// Field reports whether a member with the given name should be emitted:
// true when the query has no sparse fieldset for this context's type, or
// has one that contains name.
func (c *Context) Field(name fields.Key) bool {
	if c.qry == nil {
		return true
	}
	set, ok := c.qry.Fields.Get(c.kind)
	if !ok {
		return true
	}
	return set.Has(name)
}

// Fork returns a child context for the relationship named key whose
// targets have the given type. The child shares this context's included
// set and query.
func (c *Context) Fork(kind fields.Key, key fields.Key) *Context {
	return &Context{
		incl: c.incl,
		kind: kind,
		path: c.path.Join(key),
		qry:  c.qry,
	}
}

// Include adds obj to the shared included set. It reports whether the
// object was newly added; an object with an already-present identity is
// discarded, which is what keeps a resource reachable through several
// relationship paths from appearing in the compound document twice.
func (c *Context) Include(obj doc.Object) bool {
	return c.incl.Insert(obj)
}

// Included reports whether the query's include set names this context's
// path exactly. It is always false at the root and when no query is
// active.
func (c *Context) Included() bool {
	if c.qry == nil {
		return false
	}
	return c.qry.Include.Has(c.path)
}
