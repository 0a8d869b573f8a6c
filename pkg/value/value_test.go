package value

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/jsonapi/pkg/errors"
	"github.com/matzehuels/jsonapi/pkg/fields"
)

func TestDecodeJSONPreservesOrder(t *testing.T) {
	src := `{"zulu":1,"alpha":2,"mike":3}`

	val, err := DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}

	obj, ok := val.(*Map)
	if !ok {
		t.Fatalf("decoded %T, want *Map", val)
	}

	var got []string
	for key := range obj.All() {
		got = append(got, key.String())
	}
	want := []string{"zulu", "alpha", "mike"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key order = %v, want %v", got, want)
		}
	}

	out, err := json.Marshal(val)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != src {
		t.Errorf("round trip = %s, want %s", out, src)
	}
}

func TestDecodeJSONValidatesKeys(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"ok":1,"bad@name":2}`))
	if err == nil {
		t.Fatal("decode succeeded, want INVALID_MEMBER_NAME")
	}
	if !errors.Is(err, errors.CodeInvalidMemberName) {
		t.Errorf("code = %v, want INVALID_MEMBER_NAME", errors.GetCode(err))
	}
}

func TestDecodeJSONNormalizesKeys(t *testing.T) {
	val, err := DecodeJSON([]byte(`{"publishedAt":true}`))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	obj := val.(*Map)
	if _, ok := obj.Get(fields.MustParse("published-at")); !ok {
		t.Error("camelCase key was not normalized on decode")
	}
}

func TestDecodeJSONShapes(t *testing.T) {
	tests := []struct {
		src  string
		want Value
	}{
		{`null`, Null{}},
		{`true`, Bool(true)},
		{`"hi"`, String("hi")},
		{`42`, Number("42")},
		{`4.25`, Number("4.25")},
		{`[]`, Array{}},
		{`[1,"two",null]`, Array{Number("1"), String("two"), Null{}}},
		{`{}`, NewMap()},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.src))
			if err != nil {
				t.Fatalf("DecodeJSON error: %v", err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("DecodeJSON(%s) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestDecodeJSONRejects(t *testing.T) {
	bad := []string{``, `{`, `[1,]`, `{"a":1}extra`, `nul`}

	for _, src := range bad {
		if _, err := DecodeJSON([]byte(src)); err == nil {
			t.Errorf("DecodeJSON(%q) succeeded, want error", src)
		}
	}
}

func TestNumberRoundTrip(t *testing.T) {
	// Integer and float literal text survives unchanged.
	for _, src := range []string{`9007199254740993`, `0.1`, `1e100`} {
		val, err := DecodeJSON([]byte(src))
		if err != nil {
			t.Fatalf("DecodeJSON(%s) error: %v", src, err)
		}
		out, err := json.Marshal(val)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		if string(out) != src {
			t.Errorf("round trip of %s = %s", src, out)
		}
	}

	if n := Int(-7); n != Number("-7") {
		t.Errorf("Int(-7) = %q", n)
	}
	if v, err := Number("12").Int64(); err != nil || v != 12 {
		t.Errorf("Int64() = %d, %v", v, err)
	}
}

func TestEqual(t *testing.T) {
	a := MapOf(
		fields.MustParse("title"), String("Hello"),
		fields.MustParse("likes"), Number("3"),
	)
	b := MapOf(
		fields.MustParse("title"), String("Hello"),
		fields.MustParse("likes"), Number("3"),
	)
	// Same members, different order.
	c := MapOf(
		fields.MustParse("likes"), Number("3"),
		fields.MustParse("title"), String("Hello"),
	)

	if !Equal(a, b) {
		t.Error("identical maps unequal")
	}
	if Equal(a, c) {
		t.Error("order-differing maps equal")
	}
	if Equal(String("1"), Number("1")) {
		t.Error("string and number equal")
	}
	if !Equal(Null{}, Null{}) {
		t.Error("nulls unequal")
	}
}

func TestFromAndTo(t *testing.T) {
	type comment struct {
		Body  string `json:"body"`
		Likes int    `json:"likes"`
	}

	val, err := From(comment{Body: "nice", Likes: 2})
	if err != nil {
		t.Fatalf("From error: %v", err)
	}

	obj, ok := val.(*Map)
	if !ok {
		t.Fatalf("From produced %T, want *Map", val)
	}
	if got, _ := obj.Get(fields.MustParse("body")); !Equal(got, String("nice")) {
		t.Errorf("body = %v", got)
	}

	var back comment
	if err := To(val, &back); err != nil {
		t.Fatalf("To error: %v", err)
	}
	if back.Body != "nice" || back.Likes != 2 {
		t.Errorf("To round trip = %+v", back)
	}
}

func TestFromRejectsInvalidKeys(t *testing.T) {
	if _, err := From(map[string]int{"bad/key": 1}); err == nil {
		t.Error("From accepted an invalid member name")
	}
}
