package doc

import (
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Version identifies a revision of the JSON:API specification. Only
// version 1.0 is recognized; the zero value is 1.0.
type Version uint8

// V1 is version 1.0 of the specification.
const V1 Version = iota

// ParseVersion parses a version string. Anything other than "1.0" fails
// with UNSUPPORTED_VERSION.
func ParseVersion(raw string) (Version, error) {
	if raw != "1.0" {
		return 0, errors.UnsupportedVersion(raw)
	}
	return V1, nil
}

// String returns the version string.
func (Version) String() string { return "1.0" }

// JSONAPI is the top-level jsonapi member: the specification version the
// document was produced against, plus optional meta.
type JSONAPI struct {
	Meta    value.Map
	Version Version
}
