package attributes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValue_Accessors(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")

	i, ok := Int(7).AsInt64()
	require.True(t, ok)
	require.Equal(t, int64(7), i)

	f, ok := Float(1.5).AsFloat64()
	require.True(t, ok)
	require.Equal(t, 1.5, f)

	s, ok := String("x").AsString()
	require.True(t, ok)
	require.Equal(t, "x", s)

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	require.True(t, b)

	got, ok := UUID(u).AsUUID()
	require.True(t, ok)
	require.Equal(t, u, got)

	require.True(t, Null().IsNull())

	// Mismatched kinds report absence.
	_, ok = Int(7).AsString()
	require.False(t, ok)
	_, ok = String("x").AsUUID()
	require.False(t, ok)
}

func TestValue_Key(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"int", Int(42), "i:42"},
		{"string", String("tech"), "s:tech"},
		{"bool true", Bool(true), "b:1"},
		{"bool false", Bool(false), "b:0"},
		{"uuid", UUID(u), "u:f81d4fae-7dec-11d0-a765-00a0c91e6bf6"},
		{"empty array", Array(nil), "a:"},
		{"array", Array([]Value{Int(1), String("x")}), "a:i:1\x1fs:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.Key())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	require.True(t, Int(3).Equal(Int(3)))
	require.False(t, Int(3).Equal(Int(4)))
	require.True(t, Int(3).Equal(Float(3)))
	require.True(t, Float(3).Equal(Int(3)))
	require.False(t, Int(3).Equal(String("3")))
	require.True(t, Null().Equal(Null()))
	require.False(t, Null().Equal(Int(0)))
	require.True(t, Array([]Value{Int(1)}).Equal(Array([]Value{Int(1)})))
	require.False(t, Array([]Value{Int(1)}).Equal(Array([]Value{Int(1), Int(2)})))
}

func TestFromAny_Numerics(t *testing.T) {
	for _, in := range []any{int(5), int8(5), int16(5), int32(5), int64(5), uint(5), uint8(5), uint16(5), uint32(5), uint64(5)} {
		v, err := FromAny(in)
		require.NoError(t, err)
		require.Equal(t, Int(5), v, "input %T", in)
	}

	v, err := FromAny(float32(2))
	require.NoError(t, err)
	require.Equal(t, KindFloat, v.Kind)

	_, err = FromAny(uint64(1) << 63)
	require.Error(t, err)
}

func TestValue_Interface(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")

	nested := NewTable()
	nested.Set("k", Int(1))

	require.Equal(t, nil, Null().Interface())
	require.Equal(t, int64(3), Int(3).Interface())
	require.Equal(t, u, UUID(u).Interface())
	require.Equal(t, []any{"a", int64(2)}, Array([]Value{String("a"), Int(2)}).Interface())
	require.Equal(t, map[string]any{"k": int64(1)}, Object(nested).Interface())
}
