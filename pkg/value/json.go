package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
)

// MarshalJSON implements json.Marshaler.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// MarshalJSON implements json.Marshaler. The literal text is emitted as-is.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. Members are emitted in insertion
// order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, item := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(key.String())
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeJSON converts JSON text into a Value. Object member order is
// preserved and every object key is parsed as a member name; a malformed
// name fails the whole decode with INVALID_MEMBER_NAME.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// A single root value must be followed by EOF.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.CodeInvalidDocument, "trailing content after JSON value")
	}

	return val, nil
}

// decodeValue reads one complete value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.CodeInvalidDocument, "unexpected end of JSON input")
		}
		return nil, errors.Wrap(errors.CodeInvalidDocument, err, "malformed JSON")
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return nil, errors.New(errors.CodeInvalidDocument, "unexpected JSON token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, item)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(errors.CodeInvalidDocument, err, "malformed JSON array")
	}
	return arr, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidDocument, err, "malformed JSON object")
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.New(errors.CodeInvalidDocument, "unexpected object key token %v", tok)
		}

		key, err := fields.Parse(name)
		if err != nil {
			return nil, err
		}

		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, item)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(errors.CodeInvalidDocument, err, "malformed JSON object")
	}
	return obj, nil
}

// Text renders any Value as compact JSON text. Intended for diagnostics;
// errors collapse to a placeholder.
func Text(v Value) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<invalid value: %v>", err)
	}
	return string(data)
}
