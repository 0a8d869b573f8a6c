// Package value provides the structural JSON value used throughout the
// document model.
//
// # Overview
//
// [Value] is a tagged union over the six JSON shapes: [Null], [Bool],
// [Number], [String], [Array], and [Map]. It mirrors what a generic
// JSON value type offers, with one JSON:API-specific guarantee baked into
// the type system: object keys are always valid member names
// ([fields.Key]), and objects preserve insertion order.
//
// Rendering logic never inspects a Value's payload - attributes and meta
// travel through the engine opaquely.
//
// # Text codec
//
// [DecodeJSON] converts JSON text into a Value, preserving object member
// order and validating every object key as a member name; one malformed
// name fails the whole decode. Every concrete Value type implements
// json.Marshaler, so encoding with the standard library round-trips the
// structure exactly.
//
// # Go interop
//
// [From] and [To] convert between arbitrary Go values and Values by round-
// tripping through encoding/json, the module's trusted external codec.
package value
