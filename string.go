package nbt

import "strings"

// String is a tag holding UTF-8 text.
type String struct {
	named
	Value string
}

// NewString creates a String tag with the given name and value.
func NewString(name, value string) *String {
	return &String{named{name}, value}
}

func (t *String) Type() Type     { return TypeString }
func (t *String) Clone() Tag     { return NewString(t.name, t.Value) }
func (t *String) String() string { return stringify(t) }

func (t *String) readPayload(r *binReader) error {
	v, err := r.str()
	t.Value = v
	return err
}

func (t *String) writePayload(w *binWriter) error { return w.str(t.Value) }

func (t *String) parseValue(p *textParser) error {
	v, err := p.readStringValue()
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

func (t *String) writeValue(p *textPrinter, pretty bool, depth int) error {
	return p.writeString(quote(t.Value))
}

// quote wraps s in double quotes, escaping backslashes and double quotes.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '\\' || r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// unescape resolves the single-character backslash escape rule: a backslash
// followed by any character yields that character verbatim.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
