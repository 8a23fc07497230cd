// Package attributes provides the typed attribute model for features.
//
// Attribute values are a closed tagged variant (Kind plus payload) instead
// of raw interface{} values: no reflection on the read path, predictable
// comparison semantics for filtering, and a stable representation for
// indexing. Tables preserve member insertion order so documents round-trip
// without reshuffling.
package attributes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
	// KindObject represents a nested attribute table.
	KindObject
	// KindUUID represents a UUID value. Feature identifiers resolved from
	// UUID-shaped strings keep their type through the attribute table.
	KindUUID
)

// Value is a small typed value used for attribute tables and filters.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	S    string
	B    bool
	A    []Value
	O    *Table
	U    uuid.UUID
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Object returns a nested-table Value.
func Object(t *Table) Value { return Value{Kind: KindObject, O: t} }

// UUID returns a UUID Value.
func UUID(u uuid.UUID) Value { return Value{Kind: KindUUID, U: u} }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsUUID returns the UUID value if Kind is KindUUID.
func (v Value) AsUUID() (uuid.UUID, bool) {
	if v.Kind != KindUUID {
		return uuid.UUID{}, false
	}
	return v.U, true
}

// AsObject returns the nested table if Kind is KindObject.
func (v Value) AsObject() (*Table, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	return v.O, true
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Key returns a stable string representation for use in inverted indexes.
// It must remain stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.S
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindUUID:
		return "u:" + v.U.String()
	case KindObject:
		if v.O == nil || v.O.Len() == 0 {
			return "o:"
		}
		parts := make([]string, 0, v.O.Len())
		v.O.Range(func(k string, ov Value) bool {
			parts = append(parts, k+"="+ov.Key())
			return true
		})
		return "o:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		// Int/float comparisons are the one cross-kind case callers
		// expect to work.
		if v.Kind == KindInt && o.Kind == KindFloat {
			return float64(v.I64) == o.F64
		}
		if v.Kind == KindFloat && o.Kind == KindInt {
			return v.F64 == float64(o.I64)
		}
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return v.F64 == o.F64
	case KindString:
		return v.S == o.S
	case KindBool:
		return v.B == o.B
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.O.Equal(o.O)
	case KindUUID:
		return v.U == o.U
	default:
		return false
	}
}

// clone creates a deep copy of a Value, including nested arrays and tables.
func (v Value) clone() Value {
	switch v.Kind {
	case KindArray:
		if len(v.A) == 0 {
			return v
		}
		a := make([]Value, len(v.A))
		for i := range v.A {
			a[i] = v.A[i].clone()
		}
		v.A = a
		return v
	case KindObject:
		if v.O != nil {
			v.O = v.O.Clone()
		}
		return v
	default:
		return v
	}
}

// Interface returns the value as a plain Go value (nested tables become
// map[string]any). This is the inverse adapter to FromAny.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.S
	case KindBool:
		return v.B
	case KindUUID:
		return v.U
	case KindArray:
		out := make([]any, len(v.A))
		for i := range v.A {
			out[i] = v.A[i].Interface()
		}
		return out
	case KindObject:
		if v.O == nil {
			return map[string]any{}
		}
		out := make(map[string]any, v.O.Len())
		v.O.Range(func(k string, ov Value) bool {
			out[k] = ov.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for user input and legacy map-based APIs.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Table:
		return Object(x), nil
	case uuid.UUID:
		return UUID(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(math.MaxInt64) {
			// Avoid silently wrapping large values.
			return Value{}, fmt.Errorf("attributes: uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	case map[string]any:
		t, err := TableFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Object(t), nil
	default:
		return Value{}, fmt.Errorf("attributes: unsupported value type %T", v)
	}
}
