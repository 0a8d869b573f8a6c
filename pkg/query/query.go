package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Fieldset is the set of field names a client requested for one resource
// type. An absent Fieldset means "all fields".
type Fieldset = collections.Set[fields.Key]

// Query represents the well-known JSON:API query parameters for one
// request. The zero value is the decoded equivalent of an empty query
// string. A Query is treated as read-only once decoded or built.
type Query struct {
	// Fields maps a resource type to the sparse fieldset the client wants
	// for it. Types with no entry get all of their fields.
	Fields collections.Map[fields.Key, *Fieldset]

	// Filter maps field paths to the value each returned resource should
	// have for that field.
	Filter collections.Map[fields.Path, value.Value]

	// Include lists the relationship paths to expand into the document's
	// included resources.
	Include collections.Set[fields.Path]

	// Page holds optional pagination parameters.
	Page *Page

	// Sort lists sort instructions in the order they were specified.
	Sort collections.Set[Sort]
}

// New returns the decoded equivalent of an empty query string.
func New() *Query { return &Query{} }

// Parse decodes a percent-encoded query string. The empty string yields the
// all-defaults Query. The first parse failure aborts the decode; no partial
// result is returned.
func Parse(raw string) (*Query, error) {
	q := New()
	if raw == "" {
		return q, nil
	}

	var pageNumber, pageSize *uint64

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidQuery, err, "parameter %q", rawName)
		}
		val, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidQuery, err, "parameter %q", name)
		}

		base, arg, bracketed := cutBracket(name)
		if err := q.apply(base, arg, bracketed, val, &pageNumber, &pageSize); err != nil {
			return nil, err
		}
	}

	if pageNumber != nil || pageSize != nil {
		var number, size uint64 = 1, 0
		if pageNumber != nil {
			number = *pageNumber
		}
		if pageSize != nil {
			size = *pageSize
		}
		q.Page = NewPage(number, size)
	}

	return q, nil
}

// ParseBytes decodes a percent-encoded query string from bytes.
func ParseBytes(raw []byte) (*Query, error) {
	return Parse(string(raw))
}

// apply folds one decoded parameter into the query.
func (q *Query) apply(base, arg string, bracketed bool, val string, pageNumber, pageSize **uint64) error {
	switch base {
	case "fields":
		if !bracketed {
			return errors.New(errors.CodeInvalidQuery, "fields requires a type, e.g. fields[articles]")
		}
		kind, err := fields.Parse(arg)
		if err != nil {
			return err
		}
		set := &Fieldset{}
		for _, name := range strings.Split(val, ",") {
			key, err := fields.Parse(name)
			if err != nil {
				return err
			}
			set.Add(key)
		}
		q.Fields.Set(kind, set)

	case "filter":
		if !bracketed {
			return errors.New(errors.CodeInvalidQuery, "filter requires a path, e.g. filter[users.name]")
		}
		path, err := fields.ParsePath(arg)
		if err != nil {
			return err
		}
		q.Filter.Set(path, value.String(val))

	case "include":
		if bracketed {
			return errors.New(errors.CodeInvalidQuery, "include does not take a bracket argument")
		}
		q.Include = collections.Set[fields.Path]{}
		for _, segment := range strings.Split(val, ",") {
			path, err := fields.ParsePath(segment)
			if err != nil {
				return err
			}
			q.Include.Add(path)
		}

	case "sort":
		if bracketed {
			return errors.New(errors.CodeInvalidQuery, "sort does not take a bracket argument")
		}
		q.Sort = collections.Set[Sort]{}
		for _, segment := range strings.Split(val, ",") {
			sort, err := ParseSort(segment)
			if err != nil {
				return err
			}
			q.Sort.Add(sort)
		}

	case "page":
		if !bracketed || (arg != "number" && arg != "size") {
			return errors.New(errors.CodeInvalidQuery, "page parameter must be page[number] or page[size]")
		}
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return errors.Wrap(errors.CodeInvalidQuery, err, "page[%s]", arg)
		}
		target := pageNumber
		if arg == "size" {
			target = pageSize
		}
		if *target != nil {
			return errors.New(errors.CodeInvalidQuery, "duplicate page[%s] parameter", arg)
		}
		*target = &n

	default:
		return errors.New(errors.CodeInvalidQuery, "unknown parameter %q", base)
	}

	return nil
}

// String encodes the query as a percent-encoded query string, the exact
// inverse of Parse. Default-valued components are omitted: an empty query
// encodes to "".
func (q *Query) String() string {
	var parts []string

	for kind, set := range q.Fields.All() {
		names := make([]string, 0, set.Len())
		for _, key := range set.Items() {
			names = append(names, key.String())
		}
		parts = append(parts, encodePair("fields["+kind.String()+"]", strings.Join(names, ",")))
	}

	for path, val := range q.Filter.All() {
		parts = append(parts, encodePair("filter["+path.String()+"]", filterText(val)))
	}

	if q.Include.Len() > 0 {
		segments := make([]string, 0, q.Include.Len())
		for _, path := range q.Include.Items() {
			segments = append(segments, path.String())
		}
		parts = append(parts, encodePair("include", strings.Join(segments, ",")))
	}

	if !q.Page.isDefault() {
		if q.Page.Number != 1 {
			parts = append(parts, encodePair("page[number]", strconv.FormatUint(q.Page.Number, 10)))
		}
		if q.Page.Size != 0 {
			parts = append(parts, encodePair("page[size]", strconv.FormatUint(q.Page.Size, 10)))
		}
	}

	if q.Sort.Len() > 0 {
		segments := make([]string, 0, q.Sort.Len())
		for _, sort := range q.Sort.Items() {
			segments = append(segments, sort.String())
		}
		parts = append(parts, encodePair("sort", strings.Join(segments, ",")))
	}

	return strings.Join(parts, "&")
}

// Equal reports whether two queries are equivalent: same entries in the
// same order for every component.
func (q *Query) Equal(other *Query) bool {
	if !q.Fields.Equal(&other.Fields, func(a, b *Fieldset) bool { return a.Equal(b) }) {
		return false
	}
	if !q.Filter.Equal(&other.Filter, value.Equal) {
		return false
	}
	if !q.Include.Equal(&other.Include) {
		return false
	}
	if !q.Sort.Equal(&other.Sort) {
		return false
	}
	return q.Page.isDefault() == other.Page.isDefault() &&
		(q.Page.isDefault() || *q.Page == *other.Page)
}

// cutBracket splits "fields[articles]" into ("fields", "articles", true).
// Names without brackets return (name, "", false).
func cutBracket(name string) (base, arg string, ok bool) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return name, "", false
	}
	return name[:open], name[open+1 : len(name)-1], true
}

func encodePair(name, val string) string {
	return url.QueryEscape(name) + "=" + url.QueryEscape(val)
}

// filterText renders a filter value in query-string form. Decoded filters
// are always strings; anything else falls back to compact JSON.
func filterText(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}
	return value.Text(v)
}
