package validators

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a JSON-shaped tagged variant: null, bool, number, string, object
// or array. The zero Value is null.
type Value struct {
	kind   Kind
	b      bool
	n      float64
	s      string
	object map[string]Value
	array  []Value
}

func Null() Value { return Value{} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Array(items ...Value) Value { return Value{kind: KindArray, array: items} }

// Object wraps fields. A nil map yields an empty object.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, object: fields}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) Number() (float64, bool) { return v.n, v.kind == KindNumber }
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Field returns the member key of an object Value.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.object[key]
	return f, ok
}

// Keys returns the sorted member names of an object Value.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.object))
	for k := range v.object {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns the elements of an array Value.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.array
}

// Len is the number of members of an object or elements of an array.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.object)
	case KindArray:
		return len(v.array)
	default:
		return 0
	}
}

// FromAny converts the output of encoding/json (or any tree built from the
// same types) into a Value. Nesting deeper than MaxDepth is rejected so that
// cyclic structures cannot recurse forever.
func FromAny(raw any) (Value, error) {
	return fromAny(raw, 0)
}

func fromAny(raw any, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, errTooDeep()
	}

	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, newValidationError(ErrNotNumeric, "Input must be a valid number")
		}
		return Number(f), nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for key, item := range v {
			converted, err := fromAny(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			fields[key] = converted
		}
		return Object(fields), nil
	case []any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			converted, err := fromAny(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return Array(items...), nil
	case Value:
		return v, nil
	default:
		if f, ok := toFloat(v); ok {
			return Number(f), nil
		}
		return Value{}, newValidationError(ErrUnsupportedType, "Unsupported value of type %T", raw)
	}
}

// Any converts v back into plain Go values (map[string]any, []any, string,
// float64, bool, nil).
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindObject:
		m := make(map[string]any, len(v.object))
		for key, item := range v.object {
			m[key] = item.Any()
		}
		return m
	case KindArray:
		items := make([]any, 0, len(v.array))
		for _, item := range v.array {
			items = append(items, item.Any())
		}
		return items
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	converted, err := FromAny(raw)
	if err != nil {
		return err
	}

	*v = converted
	return nil
}
