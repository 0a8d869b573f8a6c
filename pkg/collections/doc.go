// Package collections provides insertion-ordered map and set types.
//
// JSON:API documents are rendered with deterministic member order:
// attributes, relationships, and included resources appear in the order they
// were first inserted. Go's built-in map randomizes iteration, so the
// document model and the query types are backed by [Map] and [Set] instead.
//
// Ordering rules:
//   - Set on an existing key replaces the value in place; the key keeps its
//     original position.
//   - Delete closes the gap; a later re-insert of the same key appends at
//     the end.
//   - Iteration always reflects the current first-insertion order.
//
// The zero values are empty and ready to use. Neither type is safe for
// concurrent use without external synchronization.
package collections
