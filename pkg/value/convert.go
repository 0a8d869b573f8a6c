package value

import (
	"encoding/json"

	"github.com/matzehuels/jsonapi/pkg/errors"
)

// From converts an arbitrary Go value into a Value by round-tripping
// through the external JSON codec. Map keys must be valid member names.
func From(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return val, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidDocument, err, "encode %T", v)
	}
	return DecodeJSON(data)
}

// To interprets a Value as an instance of the target type, which must be a
// non-nil pointer. It is the inverse of From.
func To(v Value, target any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encode value")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrap(errors.CodeInvalidDocument, err, "decode into %T", target)
	}
	return nil
}
