// Package pkg provides the core libraries for working with JSON:API documents.
//
// # Overview
//
// The pkg directory covers the full round trip of the JSON:API document
// format (https://jsonapi.org): member names, query strings, documents,
// rendering, and serving. It is organized into three main areas:
//
//  1. Format primitives ([fields], [value], [collections])
//  2. Documents ([doc], [query], [render])
//  3. Infrastructure ([httpapi], [httputil], [cache], [observability], [errors])
//
// # Architecture
//
// The typical data flow when serving resources:
//
//	Query string
//	     ↓
//	[query] package (fieldsets, filters, includes, pagination, sorting)
//	     ↓
//	[render] package (resources → objects, compound-document dedup)
//	     ↓
//	[doc] package (documents, identifiers, relationships, errors)
//	     ↓
//	[httpapi] package (media type, status mapping, wire encoding)
//
// # Quick Start
//
// Render a resource into a compound document and serve it:
//
//	import (
//	    "github.com/matzehuels/jsonapi/pkg/httpapi"
//	    "github.com/matzehuels/jsonapi/pkg/render"
//	)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    q, err := httpapi.ParseQuery(r)
//	    if err != nil {
//	        httpapi.Error(w, err)
//	        return
//	    }
//	    d, err := render.Object(article, q)
//	    if err != nil {
//	        httpapi.Error(w, err)
//	        return
//	    }
//	    _ = httpapi.Write(w, d)
//	}
//
// # Main Packages
//
// ## Format Primitives
//
// [fields] - Validated, normalized member names ([fields.Key]) and
// dot-separated paths ([fields.Path]). camelCase and snake_case input
// normalizes to kebab-case; reserved characters are rejected.
//
// [value] - A structural JSON value type ([value.Value]) with
// insertion-ordered objects, plus conversion to and from tagged Go structs.
//
// [collections] - Generic insertion-ordered map and set used throughout the
// document model.
//
// ## Documents
//
// [doc] - The document model: resource objects, identifiers, relationships,
// links, error objects, and the generic [doc.Document]. Handles wire
// encoding, decoding with full validation, and flattening compound
// documents into plain values.
//
// [query] - The query-string mini-language: sparse fieldsets, filters,
// includes, pagination, and sorting, with canonical re-encoding.
//
// [render] - The rendering engine. Anything implementing [render.Resource]
// can be rendered into single-resource or collection documents, with
// sparse fieldsets applied and included resources deduplicated across the
// whole document.
//
// ## Infrastructure
//
// [httpapi] - HTTP glue: the JSON:API media type, request parsing, response
// writing, and mapping decode errors to status codes.
//
// [httputil] - Client-side fetching of remote documents with retry and
// optional caching.
//
// [cache] - Byte-level caching with file-based and no-op backends, used for
// rendered responses and fetched documents.
//
// [observability] - Hook interfaces for cache and HTTP events, registered
// at startup.
//
// [errors] - Coded errors shared by every layer; each failure carries a
// stable code such as INVALID_MEMBER_NAME or INVALID_DOCUMENT.
//
// # Common Workflows
//
// Decode and flatten a document:
//
//	d, _ := doc.Decode[doc.Object](body)
//	flat, _ := d.Flatten()
//
// Interpret a document into a tagged struct:
//
//	var article struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	}
//	_ = doc.Interpret(d, &article)
//
// Parse and re-encode a query string:
//
//	q, _ := query.Parse("include=author&fields[articles]=title")
//	canonical := q.String()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/doc/...       # Specific package
//
// [fields]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/fields
// [fields.Key]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/fields#Key
// [fields.Path]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/fields#Path
// [value]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/value
// [value.Value]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/value#Value
// [collections]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/collections
// [doc]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/doc
// [doc.Document]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/doc#Document
// [query]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/query
// [render]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/render
// [render.Resource]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/render#Resource
// [httpapi]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/httpapi
// [httputil]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/httputil
// [cache]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/jsonapi/pkg/errors
package pkg
