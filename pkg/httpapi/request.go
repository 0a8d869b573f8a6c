package httpapi

import (
	"io"
	"net/http"

	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/query"
)

// ContentType is the JSON:API media type.
const ContentType = "application/vnd.api+json"

// ParseQuery parses the request's query string. A request without a query
// string yields the all-defaults query.
func ParseQuery(r *http.Request) (*query.Query, error) {
	return query.Parse(r.URL.RawQuery)
}

// ReadDocument decodes the request body as a document of full resource
// objects.
func ReadDocument(r *http.Request) (*doc.Document[doc.Object], error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	return doc.Decode[doc.Object](body)
}

// ReadIdentifiers decodes the request body as a document of bare resource
// linkage, the shape posted to relationship endpoints.
func ReadIdentifiers(r *http.Request) (*doc.Document[doc.Identifier], error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	return doc.Decode[doc.Identifier](body)
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidDocument, err, "read request body")
	}
	return body, nil
}
