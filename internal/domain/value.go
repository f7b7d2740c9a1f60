package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the scalar variants a Value can hold.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

// Value is a tagged scalar: exactly one of string, number or bool.
// Wire payloads are maps of string keys to Values.
type Value struct {
	kind Kind
	s    string
	n    float64
	b    bool
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Float coerces v to a float64. Numbers pass through, numeric strings are
// parsed, booleans fail.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindNumber:
		return v.n, nil
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v.s)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v.b)
	}
}

// Text returns the string form of v.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	default:
		return strconv.FormatBool(v.b)
	}
}

// MarshalJSON encodes the held variant as its native JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.s)
	case KindNumber:
		return json.Marshal(v.n)
	default:
		return json.Marshal(v.b)
	}
}

// UnmarshalJSON decodes a JSON scalar into the matching variant. Objects,
// arrays and null are rejected.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = String(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return err
		}
		*v = Number(f)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("unsupported value type %T", raw)
	}
	return nil
}

var _ json.Marshaler = Value{}
var _ json.Unmarshaler = (*Value)(nil)
