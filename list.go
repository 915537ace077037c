package nbt

import "fmt"

// List is a tag holding an ordered sequence of unnamed tags that all share
// one element variant. Homogeneity is enforced at insertion time: the first
// element fixes the list's element type and later inserts must match it.
type List struct {
	named
	elemType Type
	elems    []Tag
}

// NewList creates an empty List tag with the given name. The element type
// is fixed by the first Add.
func NewList(name string) *List {
	return &List{named: named{name}}
}

func (t *List) Type() Type     { return TypeList }
func (t *List) String() string { return stringify(t) }

func (t *List) Clone() Tag {
	c := &List{named: t.named, elemType: t.elemType}
	c.elems = make([]Tag, len(t.elems))
	for i, el := range t.elems {
		c.elems[i] = el.Clone()
	}
	return c
}

// ElemType returns the element variant of the list, or TypeEnd if the list
// is empty and no element has ever been added.
func (t *List) ElemType() Type { return t.elemType }

// Len returns the number of elements.
func (t *List) Len() int { return len(t.elems) }

// Get returns the element at index i.
func (t *List) Get(i int) Tag { return t.elems[i] }

// Elems returns the elements in order. The returned slice is shared with
// the list and must not be modified.
func (t *List) Elems() []Tag { return t.elems }

// Add appends tags to the list. It returns an error if a tag is named, is
// an End tag, or does not match the list's element type.
func (t *List) Add(tags ...Tag) error {
	for _, tag := range tags {
		if tag == nil || tag.Type() == TypeEnd {
			return fmt.Errorf("nbt: cannot add an End tag to a list")
		}
		if tag.Name() != "" {
			return fmt.Errorf("nbt: list elements must be unnamed, got %q", tag.Name())
		}
		if t.elemType == TypeEnd {
			t.elemType = tag.Type()
		} else if tag.Type() != t.elemType {
			return fmt.Errorf("nbt: cannot add %s element to a list of %s", tag.Type(), t.elemType)
		}
		t.elems = append(t.elems, tag)
	}
	return nil
}

func (t *List) readPayload(r *binReader) error {
	id, err := r.u8()
	if err != nil {
		return err
	}
	n, err := r.length()
	if err != nil {
		return err
	}
	elemType := Type(id)
	if elemType == TypeEnd && n > 0 {
		return fmt.Errorf("nbt: list of %d elements declares End element type", n)
	}
	t.elemType = elemType
	t.elems = make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		el, err := newTag(elemType, "")
		if err != nil {
			return err
		}
		if err := el.readPayload(r); err != nil {
			return err
		}
		t.elems = append(t.elems, el)
	}
	return nil
}

func (t *List) writePayload(w *binWriter) error {
	// One shared element id and a count; elements are unnamed payloads.
	if err := w.u8(byte(t.elemType)); err != nil {
		return err
	}
	if err := w.i32(int32(len(t.elems))); err != nil {
		return err
	}
	for _, el := range t.elems {
		if err := el.writePayload(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *List) parseValue(p *textParser) error {
	if _, err := p.expect('['); err != nil {
		return err
	}
	t.elemType = TypeEnd
	t.elems = nil
	if err := p.sc.SkipWhitespace(); err != nil {
		return err
	}
	if c, err := p.peek(0); err != nil {
		return err
	} else if c == ']' {
		_, err := p.read()
		return err
	}
	for {
		el, err := p.readNextTag("")
		if err != nil {
			return err
		}
		if err := t.Add(el); err != nil {
			return err
		}
		c, err := p.readSkipWhitespace()
		if err != nil {
			return err
		}
		switch c {
		case ',':
		case ']':
			return nil
		default:
			return p.syntaxError(fmt.Sprintf("expected ',' or ']' in list, got %q", c))
		}
	}
}

func (t *List) writeValue(p *textPrinter, pretty bool, depth int) error {
	if err := p.writeByte('['); err != nil {
		return err
	}
	for i, el := range t.elems {
		if i > 0 {
			if err := p.separator(pretty); err != nil {
				return err
			}
		}
		if err := p.writeTag(el, pretty, depth+1); err != nil {
			return err
		}
	}
	if pretty && len(t.elems) > 0 {
		if err := p.newlineIndent(depth); err != nil {
			return err
		}
	}
	return p.writeByte(']')
}
