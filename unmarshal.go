package nbt

import (
	"fmt"
	"reflect"
)

// Unmarshaler is the interface implemented by types that can unmarshal a
// tag representation of themselves.
type Unmarshaler interface {
	UnmarshalNBT(Tag) error
}

// Unmarshal stores the value of tag in the value pointed to by v,
// reversing the mapping documented on Marshal. Numeric tags convert to any
// numeric Go type they fit; Byte additionally converts to bool. Compound
// members with no matching struct field are ignored.
func Unmarshal(tag Tag, v any) error {
	if tag == nil {
		return fmt.Errorf("nbt: cannot unmarshal a nil tag")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("nbt: Unmarshal target must be a non-nil pointer, got %T", v)
	}
	return unmarshalTag(tag, rv.Elem())
}

func unmarshalTag(tag Tag, v reflect.Value) error {
	if v.CanAddr() && v.Addr().CanInterface() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			return unmarshalCustom(tag, u, v.Type())
		}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		if u, ok := v.Interface().(Unmarshaler); ok {
			return unmarshalCustom(tag, u, v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Interface && v.NumMethod() == 0 {
		g, err := genericValue(tag)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(g))
		return nil
	}

	switch t := tag.(type) {
	case *Byte:
		if v.Kind() == reflect.Bool {
			v.SetBool(t.Value != 0)
			return nil
		}
		return setInt(tag, v, int64(t.Value))
	case *Short:
		return setInt(tag, v, int64(t.Value))
	case *Int:
		return setInt(tag, v, int64(t.Value))
	case *Long:
		return setInt(tag, v, t.Value)
	case *Float:
		return setFloat(tag, v, float64(t.Value))
	case *Double:
		return setFloat(tag, v, t.Value)
	case *String:
		if v.Kind() != reflect.String {
			return typeError(tag, v.Type())
		}
		v.SetString(t.Value)
		return nil
	case *ByteArray:
		if isByteSlice(v.Type()) {
			raw := make([]byte, len(t.Value))
			for i, b := range t.Value {
				raw[i] = byte(b)
			}
			v.SetBytes(raw)
			return nil
		}
		return setIntSeq(tag, v, len(t.Value), func(i int) int64 { return int64(t.Value[i]) })
	case *ShortArray:
		return setIntSeq(tag, v, len(t.Value), func(i int) int64 { return int64(t.Value[i]) })
	case *IntArray:
		return setIntSeq(tag, v, len(t.Value), func(i int) int64 { return int64(t.Value[i]) })
	case *LongArray:
		return setIntSeq(tag, v, len(t.Value), func(i int) int64 { return t.Value[i] })
	case *FloatArray:
		return setFloatSeq(tag, v, len(t.Value), func(i int) float64 { return float64(t.Value[i]) })
	case *DoubleArray:
		return setFloatSeq(tag, v, len(t.Value), func(i int) float64 { return t.Value[i] })
	case *List:
		return unmarshalList(t, v)
	case *Compound:
		return unmarshalCompound(t, v)
	}
	return typeError(tag, v.Type())
}

func unmarshalCustom(tag Tag, u Unmarshaler, t reflect.Type) error {
	if err := u.UnmarshalNBT(tag); err != nil {
		return &MarshalerError{Type: t, Err: err}
	}
	return nil
}

func unmarshalList(t *List, v reflect.Value) error {
	seq, err := sequenceTarget(t, v, t.Len())
	if err != nil {
		return err
	}
	for i, el := range t.Elems() {
		if i >= seq.Len() {
			break
		}
		if err := unmarshalTag(el, seq.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalCompound(t *Compound, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		fields := cachedFields(v.Type())
		for _, key := range t.Keys() {
			for _, f := range fields {
				if f.name != key {
					continue
				}
				fv, err := fieldByIndexAlloc(v, f.idx)
				if err != nil {
					return err
				}
				if err := unmarshalTag(t.Get(key), fv); err != nil {
					return err
				}
				break
			}
		}
		return nil
	case reflect.Map:
		mt := v.Type()
		if mt.Key().Kind() != reflect.String {
			return typeError(t, mt)
		}
		if v.IsNil() {
			v.Set(reflect.MakeMapWithSize(mt, t.Len()))
		}
		for _, key := range t.Keys() {
			elem := reflect.New(mt.Elem()).Elem()
			if err := unmarshalTag(t.Get(key), elem); err != nil {
				return err
			}
			v.SetMapIndex(reflect.ValueOf(key).Convert(mt.Key()), elem)
		}
		return nil
	}
	return typeError(t, v.Type())
}

// fieldByIndexAlloc walks an index path, allocating nil embedded pointers
// along the way.
func fieldByIndexAlloc(v reflect.Value, idx []int) (reflect.Value, error) {
	for i, x := range idx {
		if i > 0 {
			if v.Kind() == reflect.Pointer {
				if v.IsNil() {
					if !v.CanSet() {
						return reflect.Value{}, fmt.Errorf("nbt: cannot set embedded pointer field in %s", v.Type())
					}
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}
	return v, nil
}

// sequenceTarget prepares v (a slice or array) to hold n elements and
// returns it.
func sequenceTarget(tag Tag, v reflect.Value, n int) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Slice:
		v.Set(reflect.MakeSlice(v.Type(), n, n))
		return v, nil
	case reflect.Array:
		if v.Len() < n {
			return reflect.Value{}, fmt.Errorf("nbt: array of %d cannot hold %d elements", v.Len(), n)
		}
		return v, nil
	}
	return reflect.Value{}, typeError(tag, v.Type())
}

func setIntSeq(tag Tag, v reflect.Value, n int, get func(int) int64) error {
	seq, err := sequenceTarget(tag, v, n)
	if err != nil {
		return err
	}
	for i := 0; i < n && i < seq.Len(); i++ {
		if err := setInt(tag, seq.Index(i), get(i)); err != nil {
			return err
		}
	}
	return nil
}

func setFloatSeq(tag Tag, v reflect.Value, n int, get func(int) float64) error {
	seq, err := sequenceTarget(tag, v, n)
	if err != nil {
		return err
	}
	for i := 0; i < n && i < seq.Len(); i++ {
		if err := setFloat(tag, seq.Index(i), get(i)); err != nil {
			return err
		}
	}
	return nil
}

func setInt(tag Tag, v reflect.Value, n int64) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.OverflowInt(n) {
			return fmt.Errorf("nbt: value %d overflows %s", n, v.Type())
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || v.OverflowUint(uint64(n)) {
			return fmt.Errorf("nbt: value %d overflows %s", n, v.Type())
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(n))
		return nil
	}
	return typeError(tag, v.Type())
}

func setFloat(tag Tag, v reflect.Value, f float64) error {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(f)
		return nil
	}
	return typeError(tag, v.Type())
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func typeError(tag Tag, t reflect.Type) error {
	return fmt.Errorf("nbt: cannot unmarshal a %s tag into %s", tag.Type(), t)
}

// genericValue converts tag to its natural Go representation, used when
// unmarshaling into an untyped interface.
func genericValue(tag Tag) (any, error) {
	switch t := tag.(type) {
	case *Byte:
		return t.Value, nil
	case *Short:
		return t.Value, nil
	case *Int:
		return t.Value, nil
	case *Long:
		return t.Value, nil
	case *Float:
		return t.Value, nil
	case *Double:
		return t.Value, nil
	case *String:
		return t.Value, nil
	case *ByteArray:
		return append([]int8(nil), t.Value...), nil
	case *ShortArray:
		return append([]int16(nil), t.Value...), nil
	case *IntArray:
		return append([]int32(nil), t.Value...), nil
	case *LongArray:
		return append([]int64(nil), t.Value...), nil
	case *FloatArray:
		return append([]float32(nil), t.Value...), nil
	case *DoubleArray:
		return append([]float64(nil), t.Value...), nil
	case *List:
		elems := make([]any, t.Len())
		for i, el := range t.Elems() {
			g, err := genericValue(el)
			if err != nil {
				return nil, err
			}
			elems[i] = g
		}
		return elems, nil
	case *Compound:
		m := make(map[string]any, t.Len())
		for _, key := range t.Keys() {
			g, err := genericValue(t.Get(key))
			if err != nil {
				return nil, err
			}
			m[key] = g
		}
		return m, nil
	}
	return nil, fmt.Errorf("nbt: no generic representation for a %s tag", tag.Type())
}
