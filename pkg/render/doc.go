// Package render turns an in-memory resource graph into a JSON:API
// document: a graph walk that honors sparse fieldsets, expands included
// relationships, and deduplicates the compound document's included set.
//
// # Resources
//
// A type becomes renderable by implementing [Resource]. ToObject builds
// the full resource object, consulting its [Context] to gate attribute
// and relationship emission ([Context.Field]) and to expand relationship
// targets ([HasOne], [HasMany]). ToIdent builds the minimal resource
// linkage.
//
// # Entry points
//
// [Object] and [Collection] render full resource objects and collect
// included resources; [Ident] and [Idents] render bare resource linkage
// and never populate included. A nil resource renders a document whose
// data member is null.
//
// # Sharing
//
// One render owns one included set: a Context and every context forked
// from it write to the same set, and the set must not be aliased by a
// concurrent render. To parallelize independent top-level renders, give
// each its own render and merge the included sets afterwards with
// [doc.ObjectSet.Merge]; merging preserves first-discovery order.
//
// # Failure
//
// The first failure anywhere in the walk aborts the whole render; no
// partial document is produced.
package render
