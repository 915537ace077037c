package nbt

import "fmt"

// Compound is a tag holding a mapping from names to child tags. Insertion
// order is preserved and is significant for textual round trips.
type Compound struct {
	named
	keys []string
	tags map[string]Tag
}

// NewCompound creates an empty Compound tag with the given name.
func NewCompound(name string) *Compound {
	return &Compound{named: named{name}, tags: make(map[string]Tag)}
}

func (t *Compound) Type() Type     { return TypeCompound }
func (t *Compound) String() string { return stringify(t) }

func (t *Compound) Clone() Tag {
	c := NewCompound(t.name)
	for _, k := range t.keys {
		c.Put(t.tags[k].Clone())
	}
	return c
}

// Put inserts tag under its own name, replacing any existing member with
// that name while keeping its original position. It returns the replaced
// tag, or nil. Put panics if tag is nil or an End tag: neither can be a
// compound member.
func (t *Compound) Put(tag Tag) Tag {
	if tag == nil || tag.Type() == TypeEnd {
		panic("nbt: cannot put a nil or End tag in a compound")
	}
	prev, ok := t.tags[tag.Name()]
	if !ok {
		t.keys = append(t.keys, tag.Name())
		prev = nil
	}
	t.tags[tag.Name()] = tag
	return prev
}

// Get returns the member with the given name, or nil.
func (t *Compound) Get(name string) Tag { return t.tags[name] }

// Has reports whether a member with the given name exists.
func (t *Compound) Has(name string) bool {
	_, ok := t.tags[name]
	return ok
}

// Remove removes and returns the member with the given name, or nil.
func (t *Compound) Remove(name string) Tag {
	tag, ok := t.tags[name]
	if !ok {
		return nil
	}
	delete(t.tags, name)
	for i, k := range t.keys {
		if k == name {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return tag
}

// Keys returns the member names in insertion order.
func (t *Compound) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Values returns the members in insertion order.
func (t *Compound) Values() []Tag {
	tags := make([]Tag, len(t.keys))
	for i, k := range t.keys {
		tags[i] = t.tags[k]
	}
	return tags
}

// Len returns the number of members.
func (t *Compound) Len() int { return len(t.keys) }

// Clear removes all members.
func (t *Compound) Clear() {
	t.keys = t.keys[:0]
	clear(t.tags)
}

// GetByte returns the value of the Byte member with the given name,
// reporting whether such a member exists.
func (t *Compound) GetByte(name string) (int8, bool) {
	if v, ok := t.tags[name].(*Byte); ok {
		return v.Value, true
	}
	return 0, false
}

// GetShort returns the value of the Short member with the given name.
func (t *Compound) GetShort(name string) (int16, bool) {
	if v, ok := t.tags[name].(*Short); ok {
		return v.Value, true
	}
	return 0, false
}

// GetInt returns the value of the Int member with the given name.
func (t *Compound) GetInt(name string) (int32, bool) {
	if v, ok := t.tags[name].(*Int); ok {
		return v.Value, true
	}
	return 0, false
}

// GetLong returns the value of the Long member with the given name.
func (t *Compound) GetLong(name string) (int64, bool) {
	if v, ok := t.tags[name].(*Long); ok {
		return v.Value, true
	}
	return 0, false
}

// GetFloat returns the value of the Float member with the given name.
func (t *Compound) GetFloat(name string) (float32, bool) {
	if v, ok := t.tags[name].(*Float); ok {
		return v.Value, true
	}
	return 0, false
}

// GetDouble returns the value of the Double member with the given name.
func (t *Compound) GetDouble(name string) (float64, bool) {
	if v, ok := t.tags[name].(*Double); ok {
		return v.Value, true
	}
	return 0, false
}

// GetString returns the value of the String member with the given name.
func (t *Compound) GetString(name string) (string, bool) {
	if v, ok := t.tags[name].(*String); ok {
		return v.Value, true
	}
	return "", false
}

// GetByteArray returns the elements of the ByteArray member with the given
// name. The slice is shared with the tag, not copied.
func (t *Compound) GetByteArray(name string) ([]int8, bool) {
	if v, ok := t.tags[name].(*ByteArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetShortArray returns the elements of the ShortArray member with the
// given name.
func (t *Compound) GetShortArray(name string) ([]int16, bool) {
	if v, ok := t.tags[name].(*ShortArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetIntArray returns the elements of the IntArray member with the given
// name.
func (t *Compound) GetIntArray(name string) ([]int32, bool) {
	if v, ok := t.tags[name].(*IntArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetLongArray returns the elements of the LongArray member with the given
// name.
func (t *Compound) GetLongArray(name string) ([]int64, bool) {
	if v, ok := t.tags[name].(*LongArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetFloatArray returns the elements of the FloatArray member with the
// given name.
func (t *Compound) GetFloatArray(name string) ([]float32, bool) {
	if v, ok := t.tags[name].(*FloatArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetDoubleArray returns the elements of the DoubleArray member with the
// given name.
func (t *Compound) GetDoubleArray(name string) ([]float64, bool) {
	if v, ok := t.tags[name].(*DoubleArray); ok {
		return v.Value, true
	}
	return nil, false
}

// GetList returns the List member with the given name.
func (t *Compound) GetList(name string) (*List, bool) {
	v, ok := t.tags[name].(*List)
	return v, ok
}

// GetCompound returns the Compound member with the given name.
func (t *Compound) GetCompound(name string) (*Compound, bool) {
	v, ok := t.tags[name].(*Compound)
	return v, ok
}

// As returns tag as the concrete variant T, reporting whether the
// conversion succeeded.
func As[T Tag](tag Tag) (T, bool) {
	t, ok := tag.(T)
	return t, ok
}

func (t *Compound) readPayload(r *binReader) error {
	for {
		child, err := readNamedTag(r)
		if err != nil {
			if isTruncated(err) {
				// Ran off the end of the stream before the End marker.
				return ErrUnterminatedCompound
			}
			return err
		}
		if child == nil {
			return nil
		}
		t.Put(child)
	}
}

func (t *Compound) writePayload(w *binWriter) error {
	for _, k := range t.keys {
		if err := writeNamedTag(w, t.tags[k]); err != nil {
			return err
		}
	}
	// Terminate the member list with a single End marker byte.
	return w.u8(byte(TypeEnd))
}

// Compound textual decode runs the state machine
// awaitKey -> awaitColon -> awaitValue -> awaitSeparatorOrEnd, looping back
// to awaitKey on ',' and terminating on '}'.
func (t *Compound) parseValue(p *textParser) error {
	if _, err := p.expect('{'); err != nil {
		return err
	}
	if err := p.sc.SkipWhitespace(); err != nil {
		return err
	}
	if c, err := p.peek(0); err != nil {
		return err
	} else if c == '}' {
		_, err := p.read()
		return err
	}
	for {
		name, err := p.readTagName()
		if err != nil {
			return err
		}
		child, err := p.readNextTag(name)
		if err != nil {
			return err
		}
		t.Put(child)
		c, err := p.readSkipWhitespace()
		if err != nil {
			return err
		}
		switch c {
		case ',':
		case '}':
			return nil
		default:
			return p.syntaxError(fmt.Sprintf("expected ',' or '}' in compound, got %q", c))
		}
	}
}

func (t *Compound) writeValue(p *textPrinter, pretty bool, depth int) error {
	if err := p.writeByte('{'); err != nil {
		return err
	}
	for i, k := range t.keys {
		if i > 0 {
			if err := p.separator(pretty); err != nil {
				return err
			}
		}
		if err := p.writeMember(t.tags[k], pretty, depth+1); err != nil {
			return err
		}
	}
	if pretty && len(t.keys) > 0 {
		if err := p.newlineIndent(depth); err != nil {
			return err
		}
	}
	return p.writeByte('}')
}
