package nbt

import (
	"fmt"
	"slices"
)

// Type identifies the variant of a Tag. The values of the canonical
// variants match the one-byte ids of the binary NBT format.
type Type byte

const (
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray

	// Extension variants. Not part of the canonical binary format, but
	// encoded and decoded symmetrically by both codecs.
	TypeShortArray
	TypeFloatArray
	TypeDoubleArray
)

var typeNames = map[Type]string{
	TypeEnd:         "End",
	TypeByte:        "Byte",
	TypeShort:       "Short",
	TypeInt:         "Int",
	TypeLong:        "Long",
	TypeFloat:       "Float",
	TypeDouble:      "Double",
	TypeByteArray:   "ByteArray",
	TypeString:      "String",
	TypeList:        "List",
	TypeCompound:    "Compound",
	TypeIntArray:    "IntArray",
	TypeLongArray:   "LongArray",
	TypeShortArray:  "ShortArray",
	TypeFloatArray:  "FloatArray",
	TypeDoubleArray: "DoubleArray",
}

// String returns the variant name for t.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", byte(t))
}

// Tag is one node of an NBT tree: a name plus a typed value.
//
// The set of implementations is closed: the codec methods are unexported,
// so only the variants defined in this package satisfy the interface.
// A tag's variant is fixed at construction and never changes.
type Tag interface {
	// Name returns the tag's name. List and array elements and some
	// roots are unnamed and return "".
	Name() string
	// Type returns the tag's variant.
	Type() Type
	// Clone returns a deep copy of the tag. No node is ever shared
	// between the original and the copy.
	Clone() Tag
	// String returns the compact SNBT rendering of the tag.
	String() string

	readPayload(r *binReader) error
	writePayload(w *binWriter) error
	parseValue(p *textParser) error
	writeValue(p *textPrinter, pretty bool, depth int) error
}

// named carries the name common to every variant.
type named struct {
	name string
}

func (n named) Name() string { return n.name }

// newTag constructs an empty tag of the given variant. It is the single
// id-to-constructor registry used by both codecs.
func newTag(t Type, name string) (Tag, error) {
	switch t {
	case TypeByte:
		return NewByte(name, 0), nil
	case TypeShort:
		return NewShort(name, 0), nil
	case TypeInt:
		return NewInt(name, 0), nil
	case TypeLong:
		return NewLong(name, 0), nil
	case TypeFloat:
		return NewFloat(name, 0), nil
	case TypeDouble:
		return NewDouble(name, 0), nil
	case TypeByteArray:
		return NewByteArray(name, nil), nil
	case TypeString:
		return NewString(name, ""), nil
	case TypeList:
		return NewList(name), nil
	case TypeCompound:
		return NewCompound(name), nil
	case TypeIntArray:
		return NewIntArray(name, nil), nil
	case TypeLongArray:
		return NewLongArray(name, nil), nil
	case TypeShortArray:
		return NewShortArray(name, nil), nil
	case TypeFloatArray:
		return NewFloatArray(name, nil), nil
	case TypeDoubleArray:
		return NewDoubleArray(name, nil), nil
	}
	return nil, fmt.Errorf("nbt: unknown tag type id %d", byte(t))
}

// Equal reports whether a and b are structurally equal: same variant, same
// name, same value, and for containers the same children in the same order.
// A List's element type hint is compared only when both lists are non-empty,
// since it is not independently recoverable from an empty encoding.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() || a.Name() != b.Name() {
		return false
	}
	switch at := a.(type) {
	case *End:
		return true
	case *Byte:
		return at.Value == b.(*Byte).Value
	case *Short:
		return at.Value == b.(*Short).Value
	case *Int:
		return at.Value == b.(*Int).Value
	case *Long:
		return at.Value == b.(*Long).Value
	case *Float:
		return at.Value == b.(*Float).Value
	case *Double:
		return at.Value == b.(*Double).Value
	case *String:
		return at.Value == b.(*String).Value
	case *ByteArray:
		return slices.Equal(at.Value, b.(*ByteArray).Value)
	case *ShortArray:
		return slices.Equal(at.Value, b.(*ShortArray).Value)
	case *IntArray:
		return slices.Equal(at.Value, b.(*IntArray).Value)
	case *LongArray:
		return slices.Equal(at.Value, b.(*LongArray).Value)
	case *FloatArray:
		return slices.Equal(at.Value, b.(*FloatArray).Value)
	case *DoubleArray:
		return slices.Equal(at.Value, b.(*DoubleArray).Value)
	case *List:
		bl := b.(*List)
		if at.Len() != bl.Len() {
			return false
		}
		for i, el := range at.elems {
			if !Equal(el, bl.elems[i]) {
				return false
			}
		}
		return true
	case *Compound:
		bc := b.(*Compound)
		if at.Len() != bc.Len() {
			return false
		}
		for i, k := range at.keys {
			if k != bc.keys[i] || !Equal(at.tags[k], bc.tags[k]) {
				return false
			}
		}
		return true
	}
	return false
}
