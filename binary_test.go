package nbt

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func kitchenSink() *Compound {
	root := NewCompound("root")
	root.Put(NewByte("byte", -5))
	root.Put(NewShort("short", 300))
	root.Put(NewInt("int", -70000))
	root.Put(NewLong("long", 1<<40))
	root.Put(NewFloat("float", 1.5))
	root.Put(NewDouble("double", -2.25))
	root.Put(NewString("string", "héllo \"world\""))
	root.Put(NewByteArray("bytes", []int8{-1, 0, 1}))
	root.Put(NewShortArray("shorts", []int16{-300, 300}))
	root.Put(NewIntArray("ints", []int32{1, 2, 3}))
	root.Put(NewLongArray("longs", []int64{-1 << 40}))
	root.Put(NewFloatArray("floats", []float32{0.5}))
	root.Put(NewDoubleArray("doubles", []float64{1, 64, 1}))

	list := NewList("list")
	if err := list.Add(NewString("", "a"), NewString("", "b")); err != nil {
		panic(err)
	}
	root.Put(list)
	root.Put(NewList("empty list"))

	inner := NewCompound("inner")
	inner.Put(NewInt("n", 7))
	root.Put(inner)
	return root
}

func TestBinaryRoundTrip(t *testing.T) {
	root := kitchenSink()

	var buf bytes.Buffer
	require.NoError(t, WriteTag(&buf, root))

	got, err := ReadTag(&buf)
	require.NoError(t, err)
	require.True(t, Equal(root, got))
	require.Zero(t, buf.Len(), "decoding must consume the whole stream")
}

func TestBinaryWireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTag(&buf, NewShort("hp", 20)))
	require.Equal(t, []byte{2, 0, 2, 'h', 'p', 0, 20}, buf.Bytes())

	got, err := ReadTag(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, Equal(NewShort("hp", 20), got))
}

func TestBinaryEndRoot(t *testing.T) {
	got, err := ReadTag(bytes.NewReader([]byte{0}))
	require.NoError(t, err)
	require.Equal(t, TypeEnd, got.Type())
}

func TestBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTag(&buf, NewIntArray("v", []int32{1, 2, 3})))

	full := buf.Bytes()
	for n := 0; n < len(full); n++ {
		_, err := ReadTag(bytes.NewReader(full[:n]))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "prefix of %d bytes", n)
	}
}

func TestBinaryUnterminatedCompound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTag(&buf, kitchenSink()))

	// Drop the closing End marker of the root compound.
	full := buf.Bytes()
	_, err := ReadTag(bytes.NewReader(full[:len(full)-1]))
	require.ErrorIs(t, err, ErrUnterminatedCompound)
}

func TestBinaryNegativeLength(t *testing.T) {
	// IntArray named "v" declaring -1 elements.
	data := []byte{11, 0, 1, 'v', 0xFF, 0xFF, 0xFF, 0xFF}
	_, err := ReadTag(bytes.NewReader(data))
	require.ErrorContains(t, err, "negative length")
}

func TestBinaryListOfEnd(t *testing.T) {
	// A zero-length list may declare the End element type...
	data := []byte{9, 0, 1, 'l', 0, 0, 0, 0, 0}
	got, err := ReadTag(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 0, got.(*List).Len())

	// ...but a non-empty one may not.
	data = []byte{9, 0, 1, 'l', 0, 0, 0, 0, 2}
	_, err = ReadTag(bytes.NewReader(data))
	require.ErrorContains(t, err, "End element type")
}

func TestBinaryUnknownType(t *testing.T) {
	data := []byte{99, 0, 1, 'x'}
	_, err := ReadTag(bytes.NewReader(data))
	require.Error(t, err)
}

func TestWriteNilTag(t *testing.T) {
	require.Error(t, WriteTag(io.Discard, nil))
}
