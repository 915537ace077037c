package nbt

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Marshaler is the interface implemented by types that can marshal
// themselves into a tag.
type Marshaler interface {
	MarshalNBT() (Tag, error)
}

// Marshal returns the tag tree encoding of v.
//
// Bool and int8 become Byte, int16 Short, int32 and int Int (int must fit),
// int64 Long, float32 Float, float64 Double, string String. Byte, short,
// int, long, float and double slices become the corresponding array tags
// ([]byte and []uint8 included). Other slices and arrays become Lists, and
// must therefore marshal to one element variant. Maps with string keys and
// structs become Compounds; map members are sorted by key, struct fields
// keep declaration order.
//
// Struct fields are renamed, skipped, or omitted when empty via
// `nbt:"name,omitempty"` tags, as in encoding/json. The returned root tag
// is unnamed.
func Marshal(v any) (Tag, error) {
	return marshalValue("", reflect.ValueOf(v))
}

func marshalValue(name string, v reflect.Value) (Tag, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("nbt: cannot marshal nil")
	}

	// Check for a custom Marshaler on the value and on a pointer to it, to
	// handle both receiver forms.
	if v.Type().NumMethod() > 0 && v.CanInterface() {
		if m, ok := v.Interface().(Marshaler); ok {
			return marshalCustom(name, v, m)
		}
	}
	if v.Kind() != reflect.Pointer && v.CanInterface() {
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		if m, ok := pv.Interface().(Marshaler); ok {
			return marshalCustom(name, pv, m)
		}
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("nbt: cannot marshal a nil %s", v.Kind())
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Bool:
		var b int8
		if v.Bool() {
			b = 1
		}
		return NewByte(name, b), nil
	case reflect.Int8:
		return NewByte(name, int8(v.Int())), nil
	case reflect.Int16:
		return NewShort(name, int16(v.Int())), nil
	case reflect.Int32:
		return NewInt(name, int32(v.Int())), nil
	case reflect.Int:
		n := v.Int()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("nbt: int value %d overflows the Int tag", n)
		}
		return NewInt(name, int32(n)), nil
	case reflect.Int64:
		return NewLong(name, v.Int()), nil
	case reflect.Uint8:
		return NewShort(name, int16(v.Uint())), nil
	case reflect.Uint16:
		return NewInt(name, int32(v.Uint())), nil
	case reflect.Uint32:
		return NewLong(name, int64(v.Uint())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if n > math.MaxInt64 {
			return nil, fmt.Errorf("nbt: uint value %d overflows the Long tag", n)
		}
		return NewLong(name, int64(n)), nil
	case reflect.Float32:
		return NewFloat(name, float32(v.Float())), nil
	case reflect.Float64:
		return NewDouble(name, v.Float()), nil
	case reflect.String:
		return NewString(name, v.String()), nil
	case reflect.Slice, reflect.Array:
		return marshalSequence(name, v)
	case reflect.Map:
		return marshalMap(name, v)
	case reflect.Struct:
		return marshalStruct(name, v)
	default:
		return nil, fmt.Errorf("nbt: unsupported type for marshaling: %s", v.Type())
	}
}

func marshalCustom(name string, v reflect.Value, m Marshaler) (Tag, error) {
	tag, err := m.MarshalNBT()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	if tag == nil || tag.Type() == TypeEnd {
		return nil, &MarshalerError{Type: v.Type(), Err: fmt.Errorf("returned no tag")}
	}
	return withName(tag, name), nil
}

func marshalSequence(name string, v reflect.Value) (Tag, error) {
	n := v.Len()
	switch v.Type().Elem().Kind() {
	case reflect.Int8:
		elems := make([]int8, n)
		for i := range elems {
			elems[i] = int8(v.Index(i).Int())
		}
		return NewByteArray(name, elems), nil
	case reflect.Uint8:
		// []byte keeps its raw bits, reinterpreted as signed bytes.
		elems := make([]int8, n)
		for i := range elems {
			elems[i] = int8(v.Index(i).Uint())
		}
		return NewByteArray(name, elems), nil
	case reflect.Int16:
		elems := make([]int16, n)
		for i := range elems {
			elems[i] = int16(v.Index(i).Int())
		}
		return NewShortArray(name, elems), nil
	case reflect.Int32:
		elems := make([]int32, n)
		for i := range elems {
			elems[i] = int32(v.Index(i).Int())
		}
		return NewIntArray(name, elems), nil
	case reflect.Int64:
		elems := make([]int64, n)
		for i := range elems {
			elems[i] = v.Index(i).Int()
		}
		return NewLongArray(name, elems), nil
	case reflect.Float32:
		elems := make([]float32, n)
		for i := range elems {
			elems[i] = float32(v.Index(i).Float())
		}
		return NewFloatArray(name, elems), nil
	case reflect.Float64:
		elems := make([]float64, n)
		for i := range elems {
			elems[i] = v.Index(i).Float()
		}
		return NewDoubleArray(name, elems), nil
	}
	list := NewList(name)
	for i := 0; i < n; i++ {
		el, err := marshalValue("", v.Index(i))
		if err != nil {
			return nil, err
		}
		if err := list.Add(el); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func marshalMap(name string, v reflect.Value) (Tag, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("nbt: map key type must be a string, got %s", v.Type().Key())
	}
	c := NewCompound(name)
	keys := make([]string, 0, v.Len())
	for _, key := range v.MapKeys() {
		keys = append(keys, key.String())
	}
	// Map iteration order is random; sort so encoding stays deterministic.
	slices.Sort(keys)
	for _, key := range keys {
		child, err := marshalValue(key, v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())))
		if err != nil {
			return nil, err
		}
		c.Put(child)
	}
	return c, nil
}

func marshalStruct(name string, v reflect.Value) (Tag, error) {
	c := NewCompound(name)
	for _, f := range cachedFields(v.Type()) {
		fv, err := v.FieldByIndexErr(f.idx)
		if err != nil {
			// Nil embedded pointer; nothing to encode.
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		child, err := marshalValue(f.name, fv)
		if err != nil {
			return nil, err
		}
		c.Put(child)
	}
	return c, nil
}

// withName returns tag carrying the given name, rebuilding the node when
// the names differ. Children are reused, not cloned.
func withName(tag Tag, name string) Tag {
	if tag.Name() == name {
		return tag
	}
	switch t := tag.(type) {
	case *Byte:
		return NewByte(name, t.Value)
	case *Short:
		return NewShort(name, t.Value)
	case *Int:
		return NewInt(name, t.Value)
	case *Long:
		return NewLong(name, t.Value)
	case *Float:
		return NewFloat(name, t.Value)
	case *Double:
		return NewDouble(name, t.Value)
	case *String:
		return NewString(name, t.Value)
	case *ByteArray:
		return NewByteArray(name, t.Value)
	case *ShortArray:
		return NewShortArray(name, t.Value)
	case *IntArray:
		return NewIntArray(name, t.Value)
	case *LongArray:
		return NewLongArray(name, t.Value)
	case *FloatArray:
		return NewFloatArray(name, t.Value)
	case *DoubleArray:
		return NewDoubleArray(name, t.Value)
	case *List:
		return &List{named: named{name}, elemType: t.elemType, elems: t.elems}
	case *Compound:
		return &Compound{named: named{name}, keys: t.keys, tags: t.tags}
	}
	return tag
}

// field is a cached struct field with its resolved NBT name.
type field struct {
	name      string
	idx       []int
	omitEmpty bool
}

// fieldCache maps a struct type to its ordered []field.
var fieldCache sync.Map

// cachedFields parses a struct's `nbt` tags once per type. Unexported
// fields and fields tagged "-" are skipped; anonymous embedded structs are
// flattened, with outer fields shadowing inner ones of the same name.
func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}
	fields := collectFields(t, nil, make(map[string]bool))
	fieldCache.Store(t, fields)
	return fields
}

func collectFields(t reflect.Type, parent []int, seen map[string]bool) []field {
	var fields []field
	var embedded []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("nbt")
		if tag == "-" {
			continue
		}
		if sf.Anonymous && tag == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded = append(embedded, sf)
				continue
			}
		}

		f := field{idx: append(slices.Clone(parent), sf.Index...)}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		} else {
			f.name = sf.Name
		}
		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if opt == "omitempty" {
				f.omitEmpty = true
			}
		}
		if seen[f.name] {
			continue
		}
		seen[f.name] = true
		fields = append(fields, f)
	}
	// Embedded fields are promoted after the outer level, so shallower
	// names win.
	for _, sf := range embedded {
		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		fields = append(fields, collectFields(ft, append(slices.Clone(parent), sf.Index...), seen)...)
	}
	return fields
}

// isEmptyValue reports whether v is the empty value for omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
