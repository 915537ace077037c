package nbt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/minefmt/go-nbt/internal/scan"
)

// Parse decodes one SNBT value from data and returns the resulting tag
// tree. The root tag is unnamed. Trailing non-whitespace input is an error.
func Parse(data []byte, opts ...Option) (Tag, error) {
	return ParseReader(bytes.NewReader(data), opts...)
}

// ParseReader decodes one SNBT value from r. See Parse.
func ParseReader(r io.Reader, opts ...Option) (Tag, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &textParser{sc: scan.New(r), maxDepth: o.maxDepth}
	tag, err := p.readNextTag("")
	if err != nil {
		return nil, err
	}
	if err := p.sc.SkipWhitespace(); err != nil {
		return nil, err
	}
	if c, err := p.sc.Peek(0); err == nil {
		return nil, p.syntaxError(fmt.Sprintf("unexpected %q after value", c))
	}
	return tag, nil
}

// Stringify encodes tag as SNBT and returns the text. Encoding is a pure
// function of the tree and the options.
func Stringify(tag Tag, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := StringifyTo(&buf, tag, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StringifyTo encodes tag as SNBT to w.
func StringifyTo(w io.Writer, tag Tag, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("nbt: cannot stringify a nil tag")
	}
	bw := bufio.NewWriter(w)
	p := &textPrinter{w: bw}
	if err := p.writeTag(tag, o.pretty, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// stringify renders tag compactly for the String methods; a tree built
// through this package's constructors cannot fail to render.
func stringify(tag Tag) string {
	b, err := Stringify(tag)
	if err != nil {
		return ""
	}
	return string(b)
}

// Primitive classification patterns, tried in order; first match wins.
// Anything that matches none of them is a String.
var (
	byteValuePattern   = regexp.MustCompile(`^[-+]?\d+[bB]$`)
	doubleValuePattern = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)[dD]$`)
	floatValuePattern  = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)[fF]$`)
	intValuePattern    = regexp.MustCompile(`^[-+]?\d+$`)
	longValuePattern   = regexp.MustCompile(`^[-+]?\d+[lL]$`)
	shortValuePattern  = regexp.MustCompile(`^[-+]?\d+[sS]$`)
)

func classifyValue(token string) Type {
	switch {
	case byteValuePattern.MatchString(token):
		return TypeByte
	case doubleValuePattern.MatchString(token):
		return TypeDouble
	case floatValuePattern.MatchString(token):
		return TypeFloat
	case intValuePattern.MatchString(token):
		return TypeInt
	case longValuePattern.MatchString(token):
		return TypeLong
	case shortValuePattern.MatchString(token):
		return TypeShort
	}
	return TypeString
}

// valuePreviewMax bounds the token preview read for classification, so the
// preview can always be pushed back in full.
const valuePreviewMax = 256

// Stop set ending a bare value token. Spaces are allowed inside bare
// tokens; trailing whitespace is trimmed before classification.
var bareValueStops = []rune{',', '}', ']', '\r', '\n', '\t'}

// textParser is the recursive-descent SNBT parser.
type textParser struct {
	sc       *scan.Reader
	maxDepth int
	depth    int
}

// readNextTag skips leading whitespace, dispatches on the next character
// ('{' compound, '[' list or array, anything else primitive) and decodes
// one complete value with the given name.
func (p *textParser) readNextTag(name string) (Tag, error) {
	if err := p.sc.SkipWhitespace(); err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, fmt.Errorf("nbt: input exceeds maximum nesting depth of %d", p.maxDepth)
	}
	c, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	var tag Tag
	switch c {
	case '{':
		tag = NewCompound(name)
	case '[':
		tag = p.newListOrArray(name)
	default:
		return p.readPrimitive(name)
	}
	if err := tag.parseValue(p); err != nil {
		return nil, err
	}
	return tag, nil
}

// newListOrArray peeks two characters past the '[': a type marker followed
// by ';' selects the corresponding array variant, anything else is a List.
func (p *textParser) newListOrArray(name string) Tag {
	marker, err1 := p.sc.Peek(1)
	semi, err2 := p.sc.Peek(2)
	if err1 == nil && err2 == nil && semi == ';' {
		switch marker {
		case 'B':
			return NewByteArray(name, nil)
		case 'S':
			return NewShortArray(name, nil)
		case 'I':
			return NewIntArray(name, nil)
		case 'L':
			return NewLongArray(name, nil)
		case 'F':
			return NewFloatArray(name, nil)
		case 'D':
			return NewDoubleArray(name, nil)
		}
	}
	return NewList(name)
}

// readPrimitive tentatively reads the raw value token, pushes it back
// unconsumed, classifies it, and lets the selected variant consume it.
func (p *textParser) readPrimitive(name string) (Tag, error) {
	token, err := p.sc.ReadValue(valuePreviewMax)
	if err != nil && err != io.EOF {
		return nil, err
	}
	p.sc.Unread(token)
	if strings.TrimRight(token, " \t") == "" {
		return nil, p.syntaxError("expected a value")
	}
	var typ Type
	if token[0] == '\'' || token[0] == '"' {
		typ = TypeString
	} else {
		typ = classifyValue(strings.TrimRight(token, " \t"))
	}
	tag, err := newTag(typ, name)
	if err != nil {
		return nil, err
	}
	if err := tag.parseValue(p); err != nil {
		return nil, err
	}
	return tag, nil
}

// readTagName reads a compound member key up to its ':' separator,
// consuming the separator. Quoted keys are unescaped.
func (p *textParser) readTagName() (string, error) {
	if err := p.sc.SkipWhitespace(); err != nil {
		return "", err
	}
	c, err := p.peek(0)
	if err != nil {
		return "", err
	}
	var name string
	if c == '\'' || c == '"' {
		q, err := p.read()
		if err != nil {
			return "", err
		}
		raw, err := p.sc.ReadUntil(false, q)
		if err != nil {
			return "", errTruncated()
		}
		if _, err := p.read(); err != nil { // closing quote
			return "", err
		}
		name = unescape(raw)
	} else {
		raw, err := p.sc.ReadUntil(false, ':', ',', '}')
		if err != nil {
			return "", errTruncated()
		}
		name = strings.TrimRight(raw, " \t")
	}
	sep, err := p.readSkipWhitespace()
	if err != nil {
		return "", err
	}
	if sep != ':' {
		return "", p.syntaxError(fmt.Sprintf("expected ':' after key, got %q", sep))
	}
	return name, nil
}

// readBareValue reads an unquoted value token, trimming trailing
// whitespace. End of input ends the token.
func (p *textParser) readBareValue() (string, error) {
	if err := p.sc.SkipWhitespace(); err != nil {
		return "", err
	}
	s, err := p.sc.ReadUntil(false, bareValueStops...)
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(s, " \t"), nil
}

// readSuffixedNumber reads a bare numeric token and strips its
// single-letter type suffix.
func (p *textParser) readSuffixedNumber() (string, error) {
	s, err := p.readBareValue()
	if err != nil {
		return "", err
	}
	if len(s) < 2 {
		return "", p.syntaxError(fmt.Sprintf("malformed numeric value %q", s))
	}
	return s[:len(s)-1], nil
}

// readStringValue reads a string payload: a quoted literal (unescaped) or
// a bare token kept verbatim.
func (p *textParser) readStringValue() (string, error) {
	if err := p.sc.SkipWhitespace(); err != nil {
		return "", err
	}
	c, err := p.peek(0)
	if err != nil {
		return "", err
	}
	if c == '\'' || c == '"' {
		q, err := p.read()
		if err != nil {
			return "", err
		}
		raw, err := p.sc.ReadUntil(false, q)
		if err != nil {
			return "", &SyntaxError{Offset: p.sc.Offset(), Msg: "unterminated quoted string"}
		}
		if _, err := p.read(); err != nil { // closing quote
			return "", err
		}
		return unescape(raw), nil
	}
	s, err := p.sc.ReadUntil(false, bareValueStops...)
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(s, " \t"), nil
}

// readArrayBody consumes "[X;" followed by comma-separated raw elements and
// the closing ']', handing each element token (optional type suffix
// stripped) to add.
func (p *textParser) readArrayBody(marker rune, add func(string) error) error {
	if _, err := p.expect('['); err != nil {
		return err
	}
	if _, err := p.expect(marker); err != nil {
		return err
	}
	if _, err := p.expect(';'); err != nil {
		return err
	}
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
		if err := p.sc.SkipWhitespace(); err != nil {
			return err
		}
		raw, err := p.sc.ReadUntil(false, ',', ']', '\r', '\n', '\t')
		if err != nil {
			return errTruncated()
		}
		token := stripElemSuffix(strings.TrimRight(raw, " \t"), marker)
		if token == "" {
			return p.syntaxError("expected an array element")
		}
		if err := add(token); err != nil {
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
			return p.syntaxError(fmt.Sprintf("expected ',' or ']' in array, got %q", c))
		}
	}
}

// stripElemSuffix drops an optional type-suffix letter matching the
// array's marker, case-insensitively. Int arrays carry no suffix.
func stripElemSuffix(token string, marker rune) string {
	if token == "" || marker == 'I' {
		return token
	}
	last := rune(token[len(token)-1])
	if unicode.ToLower(last) == unicode.ToLower(marker) {
		return token[:len(token)-1]
	}
	return token
}

// read consumes one rune, reporting end of input as truncation.
func (p *textParser) read() (rune, error) {
	c, err := p.sc.Read()
	if err == io.EOF {
		return 0, errTruncated()
	}
	return c, err
}

// peek looks ahead without consuming, reporting end of input as truncation.
func (p *textParser) peek(offset int) (rune, error) {
	c, err := p.sc.Peek(offset)
	if err == io.EOF {
		return 0, errTruncated()
	}
	return c, err
}

func (p *textParser) readSkipWhitespace() (rune, error) {
	if err := p.sc.SkipWhitespace(); err != nil {
		return 0, err
	}
	return p.read()
}

func (p *textParser) expect(want rune) (rune, error) {
	c, err := p.readSkipWhitespace()
	if err != nil {
		return 0, err
	}
	if c != want {
		return 0, p.syntaxError(fmt.Sprintf("expected %q, got %q", want, c))
	}
	return c, nil
}

func (p *textParser) syntaxError(msg string) error {
	return &SyntaxError{Offset: p.sc.Offset(), Msg: msg}
}

func (p *textParser) numberError(kind, token string) error {
	return &SyntaxError{Offset: p.sc.Offset(), Msg: fmt.Sprintf("malformed %s value %q", kind, token)}
}

// Names matching this shape are written without quotes.
var bareNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// textPrinter renders a tag tree as SNBT.
type textPrinter struct {
	w *bufio.Writer
}

// writeTag writes one tag: when pretty-printing, every tag but the
// outermost starts on a fresh line indented one tab per nesting level; a
// named tag is prefixed with its (possibly quoted) name and ": ".
func (p *textPrinter) writeTag(tag Tag, pretty bool, depth int) error {
	if pretty && depth > 0 {
		if err := p.newlineIndent(depth); err != nil {
			return err
		}
	}
	if name := tag.Name(); name != "" {
		if err := p.writeName(name); err != nil {
			return err
		}
		if err := p.writeString(": "); err != nil {
			return err
		}
	}
	return tag.writeValue(p, pretty, depth)
}

// writeMember writes one compound member: newline and indent when
// pretty-printing, then the name, ": ", and the value. Unlike writeTag it
// always writes the name, so a member with an empty name comes out as a
// quoted "" key and stays parseable.
func (p *textPrinter) writeMember(tag Tag, pretty bool, depth int) error {
	if pretty {
		if err := p.newlineIndent(depth); err != nil {
			return err
		}
	}
	if err := p.writeName(tag.Name()); err != nil {
		return err
	}
	if err := p.writeString(": "); err != nil {
		return err
	}
	return tag.writeValue(p, pretty, depth)
}

func (p *textPrinter) writeName(name string) error {
	if bareNamePattern.MatchString(name) {
		return p.writeString(name)
	}
	return p.writeString(quote(name))
}

func (p *textPrinter) writeArray(marker byte, n int, elem func(int) string) error {
	if err := p.writeByte('['); err != nil {
		return err
	}
	if err := p.writeByte(marker); err != nil {
		return err
	}
	if err := p.writeByte(';'); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := p.writeByte(','); err != nil {
				return err
			}
		}
		if err := p.writeString(elem(i)); err != nil {
			return err
		}
	}
	return p.writeByte(']')
}

// separator writes the member separator: "," when pretty (the newline and
// indent follow with the next tag), ", " otherwise.
func (p *textPrinter) separator(pretty bool) error {
	if err := p.writeByte(','); err != nil {
		return err
	}
	if !pretty {
		return p.writeByte(' ')
	}
	return nil
}

func (p *textPrinter) newlineIndent(depth int) error {
	if err := p.writeByte('\n'); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if err := p.writeByte('\t'); err != nil {
			return err
		}
	}
	return nil
}

func (p *textPrinter) writeByte(c byte) error { return p.w.WriteByte(c) }

func (p *textPrinter) writeString(s string) error {
	_, err := p.w.WriteString(s)
	return err
}
