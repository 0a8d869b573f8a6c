package value

import (
	"strconv"

	"github.com/matzehuels/jsonapi/pkg/collections"
	"github.com/matzehuels/jsonapi/pkg/fields"
)

// Value is a structural JSON value. Concrete types:
//
//   - [Null]
//   - [Bool]
//   - [Number]
//   - [String]
//   - [Array]
//   - [*Map]
//
// Only types in this package implement Value.
type Value interface {
	isValue() // sealed marker
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// String is a JSON string.
type String string

// Number is a JSON number, stored as its literal text so integer and
// floating-point representations survive a round trip unchanged.
type Number string

// Array is an ordered sequence of Values.
type Array []Value

// Map is a JSON object with insertion-ordered members and keys that are
// guaranteed to be valid member names.
type Map struct {
	collections.Map[fields.Key, Value]
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (*Map) isValue()   {}

// Int builds a Number from an integer.
func Int(v int64) Number {
	return Number(strconv.FormatInt(v, 10))
}

// Float builds a Number from a float.
func Float(v float64) Number {
	return Number(strconv.FormatFloat(v, 'g', -1, 64))
}

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// NewMap returns an empty object value.
func NewMap() *Map {
	return &Map{}
}

// MapOf builds an object from alternating key, value pairs. It is a test
// and example convenience; keys must already be valid.
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("value.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(fields.Key), pairs[i+1].(Value))
	}
	return m
}

// Equal reports structural equality of two Values. Objects are equal when
// they hold equal members in the same order; numbers compare by literal
// text.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Map.Equal(&bv.Map, Equal)
	}
	return false
}
