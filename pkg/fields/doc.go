// Package fields provides validated JSON:API member names and field paths.
//
// # Overview
//
// JSON:API constrains the object keys that may appear in a document ("member
// names"): a small set of reserved characters is forbidden, and names cannot
// begin or end with a hyphen, underscore, or space. [Key] is an immutable
// wrapper that enforces these rules at construction, so every other package
// in this module can treat a Key as proof of validity.
//
// Parsing also normalizes: camelCase and snake_case input is rewritten to the
// kebab-case form the wire format uses. "someFieldName",
// "some_field_name", and "some-field-name" all parse to the same Key.
// Normalization is idempotent - parsing the string form of a Key yields an
// equal Key.
//
// [Path] is a dot-separated sequence of Keys, used for relationship paths
// ("comments.author") in include and sort query parameters. A Path
// round-trips through its string form, and both Key and Path are comparable,
// so they can be used directly as Go map keys.
//
// # Usage
//
//	key, err := fields.Parse("publishedAt")
//	// key.String() == "published-at"
//
//	path, err := fields.ParsePath("comments.author")
//	// path.Keys() == [comments author]
package fields
