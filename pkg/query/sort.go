package query

import (
	"strings"

	"github.com/matzehuels/jsonapi/pkg/fields"
)

// Direction is a sort order.
type Direction int

const (
	// Asc sorts ascending, the default.
	Asc Direction = iota
	// Desc sorts descending, requested with a '-' prefix.
	Desc
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Sort is a single sort instruction: a field path and a direction.
// Sort is comparable, so instruction sets deduplicate naturally.
type Sort struct {
	Field     fields.Path
	Direction Direction
}

// ParseSort parses one sort instruction. A leading '-' selects descending
// order; the remainder is parsed as a field path.
func ParseSort(raw string) (Sort, error) {
	direction := Asc
	if strings.HasPrefix(raw, "-") {
		direction = Desc
		raw = raw[1:]
	}

	field, err := fields.ParsePath(raw)
	if err != nil {
		return Sort{}, err
	}
	return Sort{Field: field, Direction: direction}, nil
}

// Reverse returns the instruction with its direction flipped.
func (s Sort) Reverse() Sort {
	return Sort{Field: s.Field, Direction: s.Direction.Reverse()}
}

// String renders the instruction in wire form, re-adding the '-' prefix for
// descending order.
func (s Sort) String() string {
	if s.Direction == Desc {
		return "-" + s.Field.String()
	}
	return s.Field.String()
}
