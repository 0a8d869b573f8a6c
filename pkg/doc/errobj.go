package doc

import (
	"net/http"

	"github.com/matzehuels/jsonapi/pkg/value"
)

// ErrorObject describes one failure in an error document. Every member is
// optional; a zero Status means unset. On the wire the status is a string,
// not a number.
type ErrorObject struct {
	Code   string
	Detail string
	ID     string
	Links  Links
	Meta   value.Map
	Source *ErrorSource
	Status int
	Title  string
}

// ErrorSource points at the part of the request that caused the failure:
// a query parameter name or a JSON pointer into the body.
type ErrorSource struct {
	Parameter string
	Pointer   string
}

// NewError returns an error object for the given HTTP status, titled with
// the status's canonical reason phrase.
func NewError(status int) ErrorObject {
	return ErrorObject{Status: status, Title: http.StatusText(status)}
}

// EffectiveTitle returns the title, defaulting to the canonical reason
// phrase of the status when the title is unset and a status is present.
func (e ErrorObject) EffectiveTitle() string {
	if e.Title == "" && e.Status != 0 {
		return http.StatusText(e.Status)
	}
	return e.Title
}

// ErrorBuilder accumulates raw error object members and validates them
// all at once in Finalize.
type ErrorBuilder struct {
	obj   ErrorObject
	links []rawMember[Link]
	meta  []rawMember[value.Value]
}

// BuildError starts a new error object builder.
func BuildError() *ErrorBuilder {
	return &ErrorBuilder{}
}

// Code sets the application-specific error code.
func (b *ErrorBuilder) Code(code string) *ErrorBuilder {
	b.obj.Code = code
	return b
}

// Detail sets the occurrence-specific detail message.
func (b *ErrorBuilder) Detail(detail string) *ErrorBuilder {
	b.obj.Detail = detail
	return b
}

// ID sets the unique identifier of this occurrence.
func (b *ErrorBuilder) ID(id string) *ErrorBuilder {
	b.obj.ID = id
	return b
}

// Link adds a link member.
func (b *ErrorBuilder) Link(name string, link Link) *ErrorBuilder {
	b.links = append(b.links, rawMember[Link]{name, link})
	return b
}

// Meta adds a meta member.
func (b *ErrorBuilder) Meta(name string, v value.Value) *ErrorBuilder {
	b.meta = append(b.meta, rawMember[value.Value]{name, v})
	return b
}

// Source sets the error source.
func (b *ErrorBuilder) Source(src ErrorSource) *ErrorBuilder {
	b.obj.Source = &src
	return b
}

// Status sets the HTTP status code this error maps to.
func (b *ErrorBuilder) Status(status int) *ErrorBuilder {
	b.obj.Status = status
	return b
}

// Title sets the general, occurrence-independent title.
func (b *ErrorBuilder) Title(title string) *ErrorBuilder {
	b.obj.Title = title
	return b
}

// Finalize validates every accumulated member and produces the error
// object.
func (b *ErrorBuilder) Finalize() (ErrorObject, error) {
	obj := b.obj
	links, err := buildLinks(b.links)
	if err != nil {
		return ErrorObject{}, err
	}
	meta, err := buildMap(b.meta)
	if err != nil {
		return ErrorObject{}, err
	}
	obj.Links = links
	obj.Meta = meta
	return obj, nil
}
