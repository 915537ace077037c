package nbt

import "strconv"

// ByteArray is a tag holding a length-prefixed sequence of 8-bit signed
// integers.
type ByteArray struct {
	named
	Value []int8
}

// NewByteArray creates a ByteArray tag with the given name and elements.
func NewByteArray(name string, value []int8) *ByteArray {
	return &ByteArray{named{name}, value}
}

func (t *ByteArray) Type() Type     { return TypeByteArray }
func (t *ByteArray) String() string { return stringify(t) }

func (t *ByteArray) Clone() Tag {
	v := make([]int8, len(t.Value))
	copy(v, t.Value)
	return NewByteArray(t.name, v)
}

func (t *ByteArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]int8, n)
	for i := range t.Value {
		if t.Value[i], err = r.i8(); err != nil {
			return err
		}
	}
	return nil
}

func (t *ByteArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.i8(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *ByteArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('B', func(s string) error {
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return p.numberError("byte", s)
		}
		t.Value = append(t.Value, int8(v))
		return nil
	})
}

func (t *ByteArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('B', len(t.Value), func(i int) string {
		return strconv.FormatInt(int64(t.Value[i]), 10)
	})
}

// ShortArray is an extension tag holding a sequence of 16-bit signed
// integers.
type ShortArray struct {
	named
	Value []int16
}

// NewShortArray creates a ShortArray tag with the given name and elements.
func NewShortArray(name string, value []int16) *ShortArray {
	return &ShortArray{named{name}, value}
}

func (t *ShortArray) Type() Type     { return TypeShortArray }
func (t *ShortArray) String() string { return stringify(t) }

func (t *ShortArray) Clone() Tag {
	v := make([]int16, len(t.Value))
	copy(v, t.Value)
	return NewShortArray(t.name, v)
}

func (t *ShortArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]int16, n)
	for i := range t.Value {
		if t.Value[i], err = r.i16(); err != nil {
			return err
		}
	}
	return nil
}

func (t *ShortArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.i16(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *ShortArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('S', func(s string) error {
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return p.numberError("short", s)
		}
		t.Value = append(t.Value, int16(v))
		return nil
	})
}

func (t *ShortArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('S', len(t.Value), func(i int) string {
		return strconv.FormatInt(int64(t.Value[i]), 10)
	})
}

// IntArray is a tag holding a length-prefixed sequence of 32-bit signed
// integers.
type IntArray struct {
	named
	Value []int32
}

// NewIntArray creates an IntArray tag with the given name and elements.
func NewIntArray(name string, value []int32) *IntArray {
	return &IntArray{named{name}, value}
}

func (t *IntArray) Type() Type     { return TypeIntArray }
func (t *IntArray) String() string { return stringify(t) }

func (t *IntArray) Clone() Tag {
	v := make([]int32, len(t.Value))
	copy(v, t.Value)
	return NewIntArray(t.name, v)
}

func (t *IntArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]int32, n)
	for i := range t.Value {
		if t.Value[i], err = r.i32(); err != nil {
			return err
		}
	}
	return nil
}

func (t *IntArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.i32(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *IntArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('I', func(s string) error {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return p.numberError("int", s)
		}
		t.Value = append(t.Value, int32(v))
		return nil
	})
}

func (t *IntArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('I', len(t.Value), func(i int) string {
		return strconv.FormatInt(int64(t.Value[i]), 10)
	})
}

// LongArray is a tag holding a length-prefixed sequence of 64-bit signed
// integers.
type LongArray struct {
	named
	Value []int64
}

// NewLongArray creates a LongArray tag with the given name and elements.
func NewLongArray(name string, value []int64) *LongArray {
	return &LongArray{named{name}, value}
}

func (t *LongArray) Type() Type     { return TypeLongArray }
func (t *LongArray) String() string { return stringify(t) }

func (t *LongArray) Clone() Tag {
	v := make([]int64, len(t.Value))
	copy(v, t.Value)
	return NewLongArray(t.name, v)
}

func (t *LongArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]int64, n)
	for i := range t.Value {
		if t.Value[i], err = r.i64(); err != nil {
			return err
		}
	}
	return nil
}

func (t *LongArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.i64(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *LongArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('L', func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p.numberError("long", s)
		}
		t.Value = append(t.Value, v)
		return nil
	})
}

func (t *LongArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('L', len(t.Value), func(i int) string {
		return strconv.FormatInt(t.Value[i], 10)
	})
}

// FloatArray is an extension tag holding a sequence of 32-bit IEEE 754
// floats.
type FloatArray struct {
	named
	Value []float32
}

// NewFloatArray creates a FloatArray tag with the given name and elements.
func NewFloatArray(name string, value []float32) *FloatArray {
	return &FloatArray{named{name}, value}
}

func (t *FloatArray) Type() Type     { return TypeFloatArray }
func (t *FloatArray) String() string { return stringify(t) }

func (t *FloatArray) Clone() Tag {
	v := make([]float32, len(t.Value))
	copy(v, t.Value)
	return NewFloatArray(t.name, v)
}

func (t *FloatArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]float32, n)
	for i := range t.Value {
		if t.Value[i], err = r.f32(); err != nil {
			return err
		}
	}
	return nil
}

func (t *FloatArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.f32(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *FloatArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('F', func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return p.numberError("float", s)
		}
		t.Value = append(t.Value, float32(v))
		return nil
	})
}

func (t *FloatArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('F', len(t.Value), func(i int) string {
		return formatFloat(float64(t.Value[i]), 32)
	})
}

// DoubleArray is an extension tag holding a sequence of 64-bit IEEE 754
// floats.
type DoubleArray struct {
	named
	Value []float64
}

// NewDoubleArray creates a DoubleArray tag with the given name and elements.
func NewDoubleArray(name string, value []float64) *DoubleArray {
	return &DoubleArray{named{name}, value}
}

func (t *DoubleArray) Type() Type     { return TypeDoubleArray }
func (t *DoubleArray) String() string { return stringify(t) }

func (t *DoubleArray) Clone() Tag {
	v := make([]float64, len(t.Value))
	copy(v, t.Value)
	return NewDoubleArray(t.name, v)
}

func (t *DoubleArray) readPayload(r *binReader) error {
	n, err := r.length()
	if err != nil {
		return err
	}
	t.Value = make([]float64, n)
	for i := range t.Value {
		if t.Value[i], err = r.f64(); err != nil {
			return err
		}
	}
	return nil
}

func (t *DoubleArray) writePayload(w *binWriter) error {
	if err := w.i32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.f64(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *DoubleArray) parseValue(p *textParser) error {
	t.Value = t.Value[:0]
	return p.readArrayBody('D', func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p.numberError("double", s)
		}
		t.Value = append(t.Value, v)
		return nil
	})
}

func (t *DoubleArray) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeArray('D', len(t.Value), func(i int) string {
		return formatFloat(t.Value[i], 64)
	})
}
