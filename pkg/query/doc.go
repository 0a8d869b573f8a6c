// Package query implements the JSON:API query-string mini-language.
//
// # Overview
//
// Five well-known parameters drive rendering decisions:
//
//   - fields[TYPE]=a,b    sparse fieldsets per resource type
//   - filter[PATH]=value  filtering constraints
//   - include=a,b.c       relationship paths to include
//   - page[number], page[size]  pagination parameters (modeled, not executed)
//   - sort=a,-b           sort instructions, '-' prefix for descending
//
// [Parse] decodes a percent-encoded query string into an immutable [Query];
// the empty string decodes to the all-defaults Query with no error.
// (*Query).String is the exact inverse, eliding default-valued components:
// a page number of 1 with no size serializes to nothing.
//
// [Builder] accumulates raw strings and validates everything at Build,
// failing on the first entry that is not a well-formed member name or path.
//
// A decoded Query is treated as read-only for the life of the request.
package query
