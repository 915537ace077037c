package nbt

import (
	"math"
	"strconv"
	"strings"
)

// Byte is a tag holding an 8-bit signed integer.
type Byte struct {
	named
	Value int8
}

// NewByte creates a Byte tag with the given name and value.
func NewByte(name string, value int8) *Byte {
	return &Byte{named{name}, value}
}

func (t *Byte) Type() Type     { return TypeByte }
func (t *Byte) Clone() Tag     { return NewByte(t.name, t.Value) }
func (t *Byte) String() string { return stringify(t) }

func (t *Byte) readPayload(r *binReader) error {
	v, err := r.i8()
	t.Value = v
	return err
}

func (t *Byte) writePayload(w *binWriter) error { return w.i8(t.Value) }

func (t *Byte) parseValue(p *textParser) error {
	s, err := p.readSuffixedNumber()
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return p.numberError("byte", s)
	}
	t.Value = int8(v)
	return nil
}

func (t *Byte) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(strconv.FormatInt(int64(t.Value), 10) + "b")
}

// Short is a tag holding a 16-bit signed integer.
type Short struct {
	named
	Value int16
}

// NewShort creates a Short tag with the given name and value.
func NewShort(name string, value int16) *Short {
	return &Short{named{name}, value}
}

func (t *Short) Type() Type     { return TypeShort }
func (t *Short) Clone() Tag     { return NewShort(t.name, t.Value) }
func (t *Short) String() string { return stringify(t) }

func (t *Short) readPayload(r *binReader) error {
	v, err := r.i16()
	t.Value = v
	return err
}

func (t *Short) writePayload(w *binWriter) error { return w.i16(t.Value) }

func (t *Short) parseValue(p *textParser) error {
	s, err := p.readSuffixedNumber()
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return p.numberError("short", s)
	}
	t.Value = int16(v)
	return nil
}

func (t *Short) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(strconv.FormatInt(int64(t.Value), 10) + "s")
}

// Int is a tag holding a 32-bit signed integer.
type Int struct {
	named
	Value int32
}

// NewInt creates an Int tag with the given name and value.
func NewInt(name string, value int32) *Int {
	return &Int{named{name}, value}
}

func (t *Int) Type() Type     { return TypeInt }
func (t *Int) Clone() Tag     { return NewInt(t.name, t.Value) }
func (t *Int) String() string { return stringify(t) }

func (t *Int) readPayload(r *binReader) error {
	v, err := r.i32()
	t.Value = v
	return err
}

func (t *Int) writePayload(w *binWriter) error { return w.i32(t.Value) }

func (t *Int) parseValue(p *textParser) error {
	// Int carries no type suffix.
	s, err := p.readBareValue()
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return p.numberError("int", s)
	}
	t.Value = int32(v)
	return nil
}

func (t *Int) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(strconv.FormatInt(int64(t.Value), 10))
}

// Long is a tag holding a 64-bit signed integer.
type Long struct {
	named
	Value int64
}

// NewLong creates a Long tag with the given name and value.
func NewLong(name string, value int64) *Long {
	return &Long{named{name}, value}
}

func (t *Long) Type() Type     { return TypeLong }
func (t *Long) Clone() Tag     { return NewLong(t.name, t.Value) }
func (t *Long) String() string { return stringify(t) }

func (t *Long) readPayload(r *binReader) error {
	v, err := r.i64()
	t.Value = v
	return err
}

func (t *Long) writePayload(w *binWriter) error { return w.i64(t.Value) }

func (t *Long) parseValue(p *textParser) error {
	s, err := p.readSuffixedNumber()
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return p.numberError("long", s)
	}
	t.Value = v
	return nil
}

func (t *Long) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(strconv.FormatInt(t.Value, 10) + "l")
}

// Float is a tag holding a 32-bit IEEE 754 float.
type Float struct {
	named
	Value float32
}

// NewFloat creates a Float tag with the given name and value.
func NewFloat(name string, value float32) *Float {
	return &Float{named{name}, value}
}

func (t *Float) Type() Type     { return TypeFloat }
func (t *Float) Clone() Tag     { return NewFloat(t.name, t.Value) }
func (t *Float) String() string { return stringify(t) }

func (t *Float) readPayload(r *binReader) error {
	v, err := r.f32()
	t.Value = v
	return err
}

func (t *Float) writePayload(w *binWriter) error { return w.f32(t.Value) }

func (t *Float) parseValue(p *textParser) error {
	s, err := p.readSuffixedNumber()
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return p.numberError("float", s)
	}
	t.Value = float32(v)
	return nil
}

func (t *Float) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(formatFloat(float64(t.Value), 32) + "f")
}

// Double is a tag holding a 64-bit IEEE 754 float.
type Double struct {
	named
	Value float64
}

// NewDouble creates a Double tag with the given name and value.
func NewDouble(name string, value float64) *Double {
	return &Double{named{name}, value}
}

func (t *Double) Type() Type     { return TypeDouble }
func (t *Double) Clone() Tag     { return NewDouble(t.name, t.Value) }
func (t *Double) String() string { return stringify(t) }

func (t *Double) readPayload(r *binReader) error {
	v, err := r.f64()
	t.Value = v
	return err
}

func (t *Double) writePayload(w *binWriter) error { return w.f64(t.Value) }

func (t *Double) parseValue(p *textParser) error {
	s, err := p.readSuffixedNumber()
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return p.numberError("double", s)
	}
	t.Value = v
	return nil
}

func (t *Double) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(formatFloat(t.Value, 64) + "d")
}

// formatFloat renders a float without exponent notation, keeping a ".0" on
// integral values so the text stays recognizably a float.
func formatFloat(v float64, bits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// Not representable in SNBT; emit the Go spelling rather than panic.
		return strconv.FormatFloat(v, 'g', -1, bits)
	}
	s := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
