package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadTag decodes one binary NBT tag from r: a type-id byte, a
// length-prefixed name (unless the id is End), then the variant's payload.
// A stream opening with an End id yields the End sentinel tag.
//
// The reader may be consumed byte by byte; wrap it in a bufio.Reader when
// reading from a file or socket.
func ReadTag(r io.Reader) (Tag, error) {
	tag, err := readNamedTag(&binReader{r: r})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return NewEnd(), nil
	}
	return tag, nil
}

// WriteTag encodes tag to w as binary NBT: type-id byte, name, payload.
func WriteTag(w io.Writer, tag Tag) error {
	return writeNamedTag(&binWriter{w: w}, tag)
}

// readNamedTag decodes one id+name+payload record. It returns (nil, nil)
// for a bare End marker, which terminates a compound's member list.
func readNamedTag(r *binReader) (Tag, error) {
	id, err := r.u8()
	if err != nil {
		return nil, err
	}
	if Type(id) == TypeEnd {
		return nil, nil
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	tag, err := newTag(Type(id), name)
	if err != nil {
		return nil, err
	}
	if err := tag.readPayload(r); err != nil {
		return nil, err
	}
	return tag, nil
}

func writeNamedTag(w *binWriter, tag Tag) error {
	if tag == nil {
		return fmt.Errorf("nbt: cannot write a nil tag")
	}
	if err := w.u8(byte(tag.Type())); err != nil {
		return err
	}
	if tag.Type() == TypeEnd {
		return nil
	}
	if err := w.str(tag.Name()); err != nil {
		return err
	}
	return tag.writePayload(w)
}

// binReader decodes the big-endian primitives of the wire format. Any
// short read is surfaced as a truncated-input error.
type binReader struct {
	r   io.Reader
	buf [8]byte
}

func (r *binReader) full(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		if isTruncated(err) {
			return nil, errTruncated()
		}
		return nil, err
	}
	return r.buf[:n], nil
}

func (r *binReader) u8() (byte, error) {
	b, err := r.full(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *binReader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *binReader) i16() (int16, error) {
	b, err := r.full(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (r *binReader) i32() (int32, error) {
	b, err := r.full(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *binReader) i64() (int64, error) {
	b, err := r.full(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *binReader) f32() (float32, error) {
	b, err := r.full(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func (r *binReader) f64() (float64, error) {
	b, err := r.full(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// length reads a 32-bit element count and rejects negative values.
func (r *binReader) length() (int, error) {
	n, err := r.i32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("nbt: negative length %d", n)
	}
	return int(n), nil
}

// str reads a u16-length-prefixed UTF-8 string.
func (r *binReader) str() (string, error) {
	b, err := r.full(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if isTruncated(err) {
			return "", errTruncated()
		}
		return "", err
	}
	return string(buf), nil
}

// binWriter encodes the big-endian primitives of the wire format.
type binWriter struct {
	w   io.Writer
	buf [8]byte
}

func (w *binWriter) write(b []byte) error {
	_, err := w.w.Write(b)
	return err
}

func (w *binWriter) u8(v byte) error {
	w.buf[0] = v
	return w.write(w.buf[:1])
}

func (w *binWriter) i8(v int8) error { return w.u8(byte(v)) }

func (w *binWriter) i16(v int16) error {
	binary.BigEndian.PutUint16(w.buf[:2], uint16(v))
	return w.write(w.buf[:2])
}

func (w *binWriter) i32(v int32) error {
	binary.BigEndian.PutUint32(w.buf[:4], uint32(v))
	return w.write(w.buf[:4])
}

func (w *binWriter) i64(v int64) error {
	binary.BigEndian.PutUint64(w.buf[:8], uint64(v))
	return w.write(w.buf[:8])
}

func (w *binWriter) f32(v float32) error {
	binary.BigEndian.PutUint32(w.buf[:4], math.Float32bits(v))
	return w.write(w.buf[:4])
}

func (w *binWriter) f64(v float64) error {
	binary.BigEndian.PutUint64(w.buf[:8], math.Float64bits(v))
	return w.write(w.buf[:8])
}

func (w *binWriter) str(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("nbt: string of %d bytes exceeds the u16 length prefix", len(s))
	}
	binary.BigEndian.PutUint16(w.buf[:2], uint16(len(s)))
	if err := w.write(w.buf[:2]); err != nil {
		return err
	}
	return w.write([]byte(s))
}
