package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/matzehuels/jsonapi/pkg/doc"
	"github.com/matzehuels/jsonapi/pkg/errors"
)

// Write serializes the document with the JSON:API media type and a 200
// status.
func Write[T doc.PrimaryData](w http.ResponseWriter, d *doc.Document[T]) error {
	return WriteStatus(w, http.StatusOK, d)
}

// WriteStatus serializes the document with the JSON:API media type and
// the given status.
func WriteStatus[T doc.PrimaryData](w http.ResponseWriter, status int, d *doc.Document[T]) error {
	body, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encode document")
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// Error writes err as an error document with the status it maps to:
// malformed client input becomes 400, everything else 500.
func Error(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	d := ErrorDocument(status, errors.UserMessage(err))
	if code := errors.GetCode(err); code != "" {
		d.Errors[0].Code = string(code)
	}
	if werr := WriteStatus(w, status, d); werr != nil {
		// The document model cannot fail to encode; the connection is
		// gone. Fall back to a bare status for completeness.
		http.Error(w, http.StatusText(status), status)
	}
}

// StatusFor maps a library error to the HTTP status it should surface
// as.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidMemberName,
		errors.CodeInvalidQuery,
		errors.CodeInvalidDocument,
		errors.CodeMissingField,
		errors.CodeUnsupportedVersion,
		errors.CodeInvalidLink:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrorDocument builds an error document for an HTTP status. The error
// object carries the status's canonical reason phrase as its title, the
// optional detail, and a generated id for log correlation.
func ErrorDocument(status int, detail string) *doc.Document[doc.Object] {
	obj := doc.NewError(status)
	obj.ID = uuid.NewString()
	obj.Detail = detail
	return doc.Err[doc.Object](obj)
}
