package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalStruct(t *testing.T) {
	tag, err := Parse([]byte(`{name:"Steve",health:20s,Pos:[D;1.0,64.0,1.0],ignored:1}`))
	require.NoError(t, err)

	var p player
	require.NoError(t, Unmarshal(tag, &p))
	require.Equal(t, "Steve", p.Name)
	require.Equal(t, int16(20), p.Health)
	require.Equal(t, []float64{1, 64, 1}, p.Pos)
}

func TestUnmarshalScalars(t *testing.T) {
	t.Run("bool from byte", func(t *testing.T) {
		var b bool
		require.NoError(t, Unmarshal(NewByte("", 1), &b))
		require.True(t, b)
		require.NoError(t, Unmarshal(NewByte("", 0), &b))
		require.False(t, b)
	})

	t.Run("numeric widening", func(t *testing.T) {
		var n int64
		require.NoError(t, Unmarshal(NewShort("", 300), &n))
		require.Equal(t, int64(300), n)

		var f float64
		require.NoError(t, Unmarshal(NewInt("", 7), &f))
		require.Equal(t, 7.0, f)

		var u uint16
		require.NoError(t, Unmarshal(NewByte("", 5), &u))
		require.Equal(t, uint16(5), u)
	})

	t.Run("overflow", func(t *testing.T) {
		var b int8
		err := Unmarshal(NewInt("", 300), &b)
		require.ErrorContains(t, err, "overflows int8")

		var u uint8
		err = Unmarshal(NewByte("", -1), &u)
		require.ErrorContains(t, err, "overflows")
	})

	t.Run("type mismatch", func(t *testing.T) {
		var n int
		err := Unmarshal(NewString("", "5"), &n)
		require.ErrorContains(t, err, "cannot unmarshal a String tag into int")

		var s string
		err = Unmarshal(NewInt("", 5), &s)
		require.ErrorContains(t, err, "cannot unmarshal a Int tag into string")
	})
}

func TestUnmarshalSequences(t *testing.T) {
	t.Run("byte slice from byte array", func(t *testing.T) {
		var raw []byte
		require.NoError(t, Unmarshal(NewByteArray("", []int8{-1, 0, 1}), &raw))
		require.Equal(t, []byte{0xFF, 0, 1}, raw)
	})

	t.Run("int slice from byte array", func(t *testing.T) {
		var v []int
		require.NoError(t, Unmarshal(NewByteArray("", []int8{-1, 1}), &v))
		require.Equal(t, []int{-1, 1}, v)
	})

	t.Run("fixed array from double array", func(t *testing.T) {
		var pos [3]float64
		require.NoError(t, Unmarshal(NewDoubleArray("", []float64{1, 64, 1}), &pos))
		require.Equal(t, [3]float64{1, 64, 1}, pos)

		var short [2]float64
		err := Unmarshal(NewDoubleArray("", []float64{1, 64, 1}), &short)
		require.ErrorContains(t, err, "cannot hold")
	})

	t.Run("string slice from list", func(t *testing.T) {
		l := NewList("")
		require.NoError(t, l.Add(NewString("", "a"), NewString("", "b")))
		var v []string
		require.NoError(t, Unmarshal(l, &v))
		require.Equal(t, []string{"a", "b"}, v)
	})
}

func TestUnmarshalMap(t *testing.T) {
	tag, err := Parse([]byte(`{a:1,b:2}`))
	require.NoError(t, err)

	var m map[string]int32
	require.NoError(t, Unmarshal(tag, &m))
	require.Equal(t, map[string]int32{"a": 1, "b": 2}, m)
}

func TestUnmarshalAny(t *testing.T) {
	tag, err := Parse([]byte(`{n:5,f:2.5d,s:"x",raw:[B;1,2],list:[1s,2s],inner:{b:1b}}`))
	require.NoError(t, err)

	var v any
	require.NoError(t, Unmarshal(tag, &v))
	require.Equal(t, map[string]any{
		"n":     int32(5),
		"f":     2.5,
		"s":     "x",
		"raw":   []int8{1, 2},
		"list":  []any{int16(1), int16(2)},
		"inner": map[string]any{"b": int8(1)},
	}, v)
}

func TestUnmarshalAllocatesPointers(t *testing.T) {
	type holder struct {
		N *int32 `nbt:"n"`
	}

	tag := NewCompound("")
	tag.Put(NewInt("n", 7))

	var h holder
	require.NoError(t, Unmarshal(tag, &h))
	require.NotNil(t, h.N)
	require.Equal(t, int32(7), *h.N)
}

func TestUnmarshalCustom(t *testing.T) {
	type entity struct {
		UUID uuidValue `nbt:"uuid"`
	}

	tag := NewCompound("")
	tag.Put(NewIntArray("uuid", []int32{1, 2, 3, 4}))

	var e entity
	require.NoError(t, Unmarshal(tag, &e))
	require.Equal(t, uuidValue{1, 2, 3, 4}, e.UUID)

	tag = NewCompound("")
	tag.Put(NewString("uuid", "nope"))
	err := Unmarshal(tag, &e)
	var me *MarshalerError
	require.ErrorAs(t, err, &me)
}

func TestUnmarshalTargetErrors(t *testing.T) {
	var p player
	require.Error(t, Unmarshal(nil, &p))
	require.Error(t, Unmarshal(NewInt("", 1), p), "non-pointer target")
	require.Error(t, Unmarshal(NewInt("", 1), (*player)(nil)))
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := player{Name: "Alex", Health: 15, Pos: []float64{0.5, 70, -0.5}, Level: 9}

	tag, err := Marshal(in)
	require.NoError(t, err)

	var out player
	require.NoError(t, Unmarshal(tag, &out))

	// Unexported and skipped fields are not carried.
	in.Secret, in.private = "", ""
	require.Equal(t, in, out)
}
