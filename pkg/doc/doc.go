// Package doc implements the JSON:API document model: the wire-shape types
// a server emits and a client submits.
//
// # Overview
//
// A document carries either primary data or errors, never both. Primary
// data is a [Data] of [Identifier] (resource linkage) or [Object] (full
// resource objects), in the to-one or to-many shape. Compound documents
// additionally carry related resources in an insertion-ordered, identity
// deduplicated [ObjectSet].
//
// # Construction
//
// Types here are pure values: construction performs no validation beyond
// what the fields and value packages already enforce. Builders
// ([BuildObject], [BuildIdentifier], [BuildRelationship], [BuildError])
// accept raw strings and validate everything in one finalize step.
//
// # Inbound direction
//
// [Decode] turns JSON text back into a document; [Document.Flatten]
// denormalizes a document into a single value tree, resolving resource
// linkage against the included set; [Interpret] goes all the way to an
// application type.
package doc

import (
	"encoding/json"

	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// PrimaryData is implemented by the two types that can appear as a
// document's primary data: [Identifier] and [Object]. No other type can
// implement it.
type PrimaryData interface {
	json.Marshaler

	// Identity returns the (id, type) pair identifying the resource.
	Identity() Identity

	// flatten denormalizes the item against a document's included set.
	flatten(included *ObjectSet) value.Value
}

// Data is the primary data of a document or the resource linkage of a
// relationship. It has two shapes: a to-one member (possibly absent) or a
// to-many collection. The zero value is an absent to-one member.
type Data[T PrimaryData] struct {
	items []T
	many  bool
}

// Member returns to-one data. A nil item is the null member.
func Member[T PrimaryData](item *T) Data[T] {
	if item == nil {
		return Data[T]{}
	}
	return Data[T]{items: []T{*item}}
}

// Collection returns to-many data.
func Collection[T PrimaryData](items []T) Data[T] {
	return Data[T]{items: items, many: true}
}

// IsMany reports whether the data has the to-many shape.
func (d Data[T]) IsMany() bool { return d.many }

// One returns the to-one item. The second result is false for the null
// member and for to-many data.
func (d Data[T]) One() (T, bool) {
	if d.many || len(d.items) == 0 {
		var zero T
		return zero, false
	}
	return d.items[0], true
}

// Many returns the to-many items. It returns nil for to-one data.
func (d Data[T]) Many() []T {
	if !d.many {
		return nil
	}
	return d.items
}

func (d Data[T]) flatten(included *ObjectSet) value.Value {
	if !d.many {
		item, ok := d.One()
		if !ok {
			return value.Null{}
		}
		return item.flatten(included)
	}
	out := make(value.Array, 0, len(d.items))
	for _, item := range d.items {
		out = append(out, item.flatten(included))
	}
	return out
}

// Document is a JSON:API document: primary data or errors, plus the
// optional top-level members. Included is only meaningful when T is
// [Object].
type Document[T PrimaryData] struct {
	Data     *Data[T]
	Included ObjectSet
	Errors   []ErrorObject
	JSONAPI  JSONAPI
	Links    Links
	Meta     value.Map
}

// OK returns a document carrying primary data.
func OK[T PrimaryData](data Data[T]) *Document[T] {
	return &Document[T]{Data: &data}
}

// Err returns a document carrying one or more errors.
func Err[T PrimaryData](errs ...ErrorObject) *Document[T] {
	return &Document[T]{Errors: errs}
}

// IsErr reports whether the document carries errors.
func (d *Document[T]) IsErr() bool { return len(d.Errors) > 0 }

// IsOK reports whether the document carries primary data. It is always the
// complement of IsErr.
func (d *Document[T]) IsOK() bool { return !d.IsErr() }

// Flatten denormalizes the document's primary data into a single value
// tree. Resource linkage is resolved against the included set; linkage
// with no matching included object degrades to the bare id string.
// Flattening an error document fails.
func (d *Document[T]) Flatten() (value.Value, error) {
	if d.IsErr() {
		return nil, errors.New(errors.CodeInvalidDocument, "document contains one or more errors")
	}
	if d.Data == nil {
		return value.Null{}, nil
	}
	return d.Data.flatten(&d.Included), nil
}

// Interpret flattens the document and decodes the result into target,
// which must be a non-nil pointer.
func Interpret[T PrimaryData](d *Document[T], target any) error {
	v, err := d.Flatten()
	if err != nil {
		return err
	}
	return value.To(v, target)
}
