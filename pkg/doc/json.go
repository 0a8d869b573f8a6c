package doc

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
	"github.com/matzehuels/jsonapi/pkg/value"
)

// Well-known member names of the document model itself.
var (
	keyAttributes    = fields.MustParse("attributes")
	keyCode          = fields.MustParse("code")
	keyData          = fields.MustParse("data")
	keyDetail        = fields.MustParse("detail")
	keyErrors        = fields.MustParse("errors")
	keyHref          = fields.MustParse("href")
	keyIncluded      = fields.MustParse("included")
	keyJSONAPI       = fields.MustParse("jsonapi")
	keyLinks         = fields.MustParse("links")
	keyMeta          = fields.MustParse("meta")
	keyParameter     = fields.MustParse("parameter")
	keyPointer       = fields.MustParse("pointer")
	keyRelationships = fields.MustParse("relationships")
	keySource        = fields.MustParse("source")
	keyStatus        = fields.MustParse("status")
	keyTitle         = fields.MustParse("title")
	keyType          = fields.MustParse("type")
	keyVersion       = fields.MustParse("version")
)

// memberWriter builds a JSON object member by member, in call order.
type memberWriter struct {
	buf bytes.Buffer
	err error
}

func newMemberWriter() *memberWriter {
	w := &memberWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *memberWriter) member(name string, v any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	if w.buf.Len() > 1 {
		w.buf.WriteByte(',')
	}
	w.buf.WriteString(strconv.Quote(name))
	w.buf.WriteByte(':')
	w.buf.Write(data)
}

func (w *memberWriter) finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

// keyedJSON renders an ordered map of member name to marshalable value.
func keyedJSON[V any](m *collections.Map[fields.Key, V]) (json.RawMessage, error) {
	w := newMemberWriter()
	for name, v := range m.All() {
		w.member(name.String(), v)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler.
func (i Identifier) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	w.member("id", i.ID)
	w.member("type", i.Kind.String())
	if i.Meta.Len() > 0 {
		w.member("meta", &i.Meta)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	if o.Attributes.Len() > 0 {
		w.member("attributes", &o.Attributes)
	}
	w.member("id", o.ID)
	w.member("type", o.Kind.String())
	if o.Links.Len() > 0 {
		links, err := keyedJSON(&o.Links)
		if err != nil {
			return nil, err
		}
		w.member("links", links)
	}
	if o.Meta.Len() > 0 {
		w.member("meta", &o.Meta)
	}
	if o.Relationships.Len() > 0 {
		rels, err := keyedJSON(&o.Relationships)
		if err != nil {
			return nil, err
		}
		w.member("relationships", rels)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler.
func (r Relationship) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	w.member("data", r.Data)
	if r.Links.Len() > 0 {
		links, err := keyedJSON(&r.Links)
		if err != nil {
			return nil, err
		}
		w.member("links", links)
	}
	if r.Meta.Len() > 0 {
		w.member("meta", &r.Meta)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler. A link with no meta is a bare
// string.
func (l Link) MarshalJSON() ([]byte, error) {
	if l.Meta.Len() == 0 {
		return json.Marshal(l.Href)
	}
	w := newMemberWriter()
	w.member("href", l.Href)
	w.member("meta", &l.Meta)
	return w.finish()
}

// MarshalJSON implements json.Marshaler.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// MarshalJSON implements json.Marshaler.
func (j JSONAPI) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	if j.Meta.Len() > 0 {
		w.member("meta", &j.Meta)
	}
	w.member("version", j.Version)
	return w.finish()
}

// MarshalJSON implements json.Marshaler. The status is string-encoded and
// the title falls back to the status's canonical reason phrase.
func (e ErrorObject) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	if e.Code != "" {
		w.member("code", e.Code)
	}
	if e.Detail != "" {
		w.member("detail", e.Detail)
	}
	if e.ID != "" {
		w.member("id", e.ID)
	}
	if e.Links.Len() > 0 {
		links, err := keyedJSON(&e.Links)
		if err != nil {
			return nil, err
		}
		w.member("links", links)
	}
	if e.Meta.Len() > 0 {
		w.member("meta", &e.Meta)
	}
	if e.Source != nil {
		w.member("source", *e.Source)
	}
	if e.Status != 0 {
		w.member("status", strconv.Itoa(e.Status))
	}
	if title := e.EffectiveTitle(); title != "" {
		w.member("title", title)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler.
func (s ErrorSource) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	if s.Parameter != "" {
		w.member("parameter", s.Parameter)
	}
	if s.Pointer != "" {
		w.member("pointer", s.Pointer)
	}
	return w.finish()
}

// MarshalJSON implements json.Marshaler. To-many data is an array; the
// absent to-one member is null.
func (d Data[T]) MarshalJSON() ([]byte, error) {
	if d.many {
		return marshalArray(d.items)
	}
	item, ok := d.One()
	if !ok {
		return []byte("null"), nil
	}
	return item.MarshalJSON()
}

// MarshalJSON implements json.Marshaler, emitting the set as an array in
// first-insertion order.
func (s *ObjectSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for obj := range s.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		data, err := obj.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document[T]) MarshalJSON() ([]byte, error) {
	w := newMemberWriter()
	if d.IsErr() {
		errs, err := marshalArray(d.Errors)
		if err != nil {
			return nil, err
		}
		w.member("errors", json.RawMessage(errs))
	} else {
		data := Data[T]{}
		if d.Data != nil {
			data = *d.Data
		}
		w.member("data", data)
		if d.Included.Len() > 0 {
			w.member("included", &d.Included)
		}
	}
	w.member("jsonapi", d.JSONAPI)
	if d.Links.Len() > 0 {
		links, err := keyedJSON(&d.Links)
		if err != nil {
			return nil, err
		}
		w.member("links", links)
	}
	if d.Meta.Len() > 0 {
		w.member("meta", &d.Meta)
	}
	return w.finish()
}

func marshalArray[T json.Marshaler](items []T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := item.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Decode parses JSON text into a document whose primary data is T.
func Decode[T PrimaryData](data []byte) (*Document[T], error) {
	v, err := value.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	root, ok := v.(*value.Map)
	if !ok {
		return nil, errors.New(errors.CodeInvalidDocument, "document must be a JSON object")
	}
	return FromValue[T](root)
}

// FromValue interprets an already-decoded value as a document whose
// primary data is T.
func FromValue[T PrimaryData](root *value.Map) (*Document[T], error) {
	out := &Document[T]{}

	hasData := root.Has(keyData)
	_, hasErrors := root.Get(keyErrors)
	switch {
	case hasData && hasErrors:
		return nil, errors.New(errors.CodeInvalidDocument, "data and errors are mutually exclusive")
	case !hasData && !hasErrors:
		return nil, errors.New(errors.CodeInvalidDocument, "document must contain data or errors")
	}

	for name, v := range root.All() {
		var err error
		switch name {
		case keyData:
			var data Data[T]
			if data, err = dataFromValue[T](v); err == nil {
				out.Data = &data
			}
		case keyErrors:
			out.Errors, err = errorsFromValue(v)
		case keyIncluded:
			err = includedFromValue(v, &out.Included)
		case keyJSONAPI:
			out.JSONAPI, err = jsonapiFromValue(v)
		case keyLinks:
			out.Links, err = linksFromValue(v)
		case keyMeta:
			out.Meta, err = metaFromValue(v)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func dataFromValue[T PrimaryData](v value.Value) (Data[T], error) {
	switch data := v.(type) {
	case value.Null:
		return Member[T](nil), nil
	case *value.Map:
		item, err := itemFromValue[T](data)
		if err != nil {
			return Data[T]{}, err
		}
		return Member(&item), nil
	case value.Array:
		items := make([]T, 0, len(data))
		for _, entry := range data {
			m, ok := entry.(*value.Map)
			if !ok {
				return Data[T]{}, errors.New(errors.CodeInvalidDocument, "resource entries must be objects")
			}
			item, err := itemFromValue[T](m)
			if err != nil {
				return Data[T]{}, err
			}
			items = append(items, item)
		}
		return Collection(items), nil
	}
	return Data[T]{}, errors.New(errors.CodeInvalidDocument, "data must be an object, array, or null")
}

// itemFromValue interprets a resource entry as T, choosing the identifier
// or object shape from the type parameter.
func itemFromValue[T PrimaryData](m *value.Map) (T, error) {
	var zero T
	switch any(zero).(type) {
	case Identifier:
		ident, err := identifierFromValue(m)
		return any(ident).(T), err
	case Object:
		obj, err := objectFromValue(m)
		return any(obj).(T), err
	}
	return zero, errors.New(errors.CodeInternal, "unsupported primary data type")
}

func identifierFromValue(m *value.Map) (Identifier, error) {
	ident := Identifier{}
	var err error
	if ident.ID, ident.Kind, err = identityFromValue(m); err != nil {
		return Identifier{}, err
	}
	if v, ok := m.Get(keyMeta); ok {
		if ident.Meta, err = metaFromValue(v); err != nil {
			return Identifier{}, err
		}
	}
	return ident, nil
}

func objectFromValue(m *value.Map) (Object, error) {
	obj := Object{}
	var err error
	if obj.ID, obj.Kind, err = identityFromValue(m); err != nil {
		return Object{}, err
	}
	for name, v := range m.All() {
		switch name {
		case keyAttributes:
			obj.Attributes, err = metaFromValue(v)
		case keyRelationships:
			err = relationshipsFromValue(v, &obj.Relationships)
		case keyLinks:
			obj.Links, err = linksFromValue(v)
		case keyMeta:
			obj.Meta, err = metaFromValue(v)
		}
		if err != nil {
			return Object{}, err
		}
	}
	return obj, nil
}

// identityFromValue extracts the required id and type members.
func identityFromValue(m *value.Map) (string, fields.Key, error) {
	v, ok := m.Get(keyID)
	if !ok {
		return "", fields.Key{}, errors.MissingField("id")
	}
	id, err := stringFromValue(v, "id")
	if err != nil {
		return "", fields.Key{}, err
	}

	v, ok = m.Get(keyType)
	if !ok {
		return "", fields.Key{}, errors.MissingField("type")
	}
	raw, err := stringFromValue(v, "type")
	if err != nil {
		return "", fields.Key{}, err
	}
	kind, err := fields.Parse(raw)
	if err != nil {
		return "", fields.Key{}, err
	}
	return id, kind, nil
}

func relationshipsFromValue(v value.Value, out *Relationships) error {
	m, ok := v.(*value.Map)
	if !ok {
		return errors.New(errors.CodeInvalidDocument, "relationships must be an object")
	}
	for name, entry := range m.All() {
		rel, err := relationshipFromValue(entry)
		if err != nil {
			return err
		}
		out.Set(name, rel)
	}
	return nil
}

func relationshipFromValue(v value.Value) (Relationship, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return Relationship{}, errors.New(errors.CodeInvalidDocument, "a relationship must be an object")
	}

	rel := Relationship{}
	found := false
	for name, entry := range m.All() {
		var err error
		switch name {
		case keyData:
			found = true
			rel.Data, err = dataFromValue[Identifier](entry)
		case keyLinks:
			rel.Links, err = linksFromValue(entry)
		case keyMeta:
			rel.Meta, err = metaFromValue(entry)
		default:
			err = errors.New(errors.CodeInvalidDocument, "unexpected relationship member %q", name)
		}
		if err != nil {
			return Relationship{}, err
		}
	}
	if !found {
		return Relationship{}, errors.MissingField("data")
	}
	return rel, nil
}

func includedFromValue(v value.Value, out *ObjectSet) error {
	arr, ok := v.(value.Array)
	if !ok {
		return errors.New(errors.CodeInvalidDocument, "included must be an array")
	}
	for _, entry := range arr {
		m, ok := entry.(*value.Map)
		if !ok {
			return errors.New(errors.CodeInvalidDocument, "included entries must be objects")
		}
		obj, err := objectFromValue(m)
		if err != nil {
			return err
		}
		out.Insert(obj)
	}
	return nil
}

func jsonapiFromValue(v value.Value) (JSONAPI, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return JSONAPI{}, errors.New(errors.CodeInvalidDocument, "jsonapi must be an object")
	}

	out := JSONAPI{}
	found := false
	for name, entry := range m.All() {
		var err error
		switch name {
		case keyMeta:
			out.Meta, err = metaFromValue(entry)
		case keyVersion:
			found = true
			var raw string
			if raw, err = stringFromValue(entry, "version"); err == nil {
				out.Version, err = ParseVersion(raw)
			}
		}
		if err != nil {
			return JSONAPI{}, err
		}
	}
	if !found {
		return JSONAPI{}, errors.MissingField("version")
	}
	return out, nil
}

func linksFromValue(v value.Value) (Links, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return Links{}, errors.New(errors.CodeInvalidDocument, "links must be an object")
	}
	var out Links
	for name, entry := range m.All() {
		link, err := linkFromValue(entry)
		if err != nil {
			return Links{}, err
		}
		out.Set(name, link)
	}
	return out, nil
}

func linkFromValue(v value.Value) (Link, error) {
	switch link := v.(type) {
	case value.String:
		return ParseLink(string(link))
	case *value.Map:
		var href *string
		var meta value.Map
		for name, entry := range link.All() {
			var err error
			switch name {
			case keyHref:
				var raw string
				if raw, err = stringFromValue(entry, "href"); err == nil {
					href = &raw
				}
			case keyMeta:
				meta, err = metaFromValue(entry)
			default:
				err = errors.New(errors.CodeInvalidDocument, "unexpected link member %q", name)
			}
			if err != nil {
				return Link{}, err
			}
		}
		if href == nil {
			return Link{}, errors.MissingField("href")
		}
		out, err := ParseLink(*href)
		if err != nil {
			return Link{}, err
		}
		out.Meta = meta
		return out, nil
	}
	return Link{}, errors.New(errors.CodeInvalidDocument, "a link must be a string or an object")
}

func errorsFromValue(v value.Value) ([]ErrorObject, error) {
	arr, ok := v.(value.Array)
	if !ok {
		return nil, errors.New(errors.CodeInvalidDocument, "errors must be an array")
	}
	out := make([]ErrorObject, 0, len(arr))
	for _, entry := range arr {
		obj, err := errorObjectFromValue(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func errorObjectFromValue(v value.Value) (ErrorObject, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return ErrorObject{}, errors.New(errors.CodeInvalidDocument, "error entries must be objects")
	}

	obj := ErrorObject{}
	for name, entry := range m.All() {
		var err error
		switch name {
		case keyCode:
			obj.Code, err = stringFromValue(entry, "code")
		case keyDetail:
			obj.Detail, err = stringFromValue(entry, "detail")
		case keyID:
			obj.ID, err = stringFromValue(entry, "id")
		case keyLinks:
			obj.Links, err = linksFromValue(entry)
		case keyMeta:
			obj.Meta, err = metaFromValue(entry)
		case keySource:
			var src ErrorSource
			if src, err = errorSourceFromValue(entry); err == nil {
				obj.Source = &src
			}
		case keyStatus:
			var raw string
			if raw, err = stringFromValue(entry, "status"); err == nil {
				obj.Status, err = strconv.Atoi(raw)
				if err != nil {
					err = errors.New(errors.CodeInvalidDocument, "status %q is not a status code", raw)
				}
			}
		case keyTitle:
			obj.Title, err = stringFromValue(entry, "title")
		}
		if err != nil {
			return ErrorObject{}, err
		}
	}
	return obj, nil
}

func errorSourceFromValue(v value.Value) (ErrorSource, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return ErrorSource{}, errors.New(errors.CodeInvalidDocument, "source must be an object")
	}
	src := ErrorSource{}
	for name, entry := range m.All() {
		var err error
		switch name {
		case keyParameter:
			src.Parameter, err = stringFromValue(entry, "parameter")
		case keyPointer:
			src.Pointer, err = stringFromValue(entry, "pointer")
		}
		if err != nil {
			return ErrorSource{}, err
		}
	}
	return src, nil
}

func metaFromValue(v value.Value) (value.Map, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return value.Map{}, errors.New(errors.CodeInvalidDocument, "expected a JSON object")
	}
	return *m, nil
}

func stringFromValue(v value.Value, name string) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", errors.New(errors.CodeInvalidDocument, "%s must be a string", name)
	}
	return string(s), nil
}
