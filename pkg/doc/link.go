package doc

import (
	"net/url"

	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Links is an ordered map of link name to link.
type Links = collections.Map[fields.Key, Link]

// Link is a URL with optional meta information. On the wire a link with no
// meta is a bare string; one with meta is an object with href and meta
// members. Both shapes are accepted on decode.
type Link struct {
	Href string
	Meta value.Map
}

// ParseLink validates raw as a URI reference and returns it as a link.
func ParseLink(raw string) (Link, error) {
	if _, err := url.Parse(raw); err != nil {
		return Link{}, errors.Wrap(errors.CodeInvalidLink, err, "invalid link %q", raw)
	}
	return Link{Href: raw}, nil
}

// MustParseLink is ParseLink for hrefs known to be valid. It panics on
// error.
func MustParseLink(raw string) Link {
	link, err := ParseLink(raw)
	if err != nil {
		panic(err)
	}
	return link
}

// String returns the link's href.
func (l Link) String() string { return l.Href }
