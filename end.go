package nbt

// End is the zero-payload sentinel that terminates a Compound's binary
// encoding. It never appears as a value inside a tree.
type End struct {
	named
}

// NewEnd creates an End tag.
func NewEnd() *End { return &End{} }

func (t *End) Type() Type     { return TypeEnd }
func (t *End) Clone() Tag     { return NewEnd() }
func (t *End) String() string { return "" }

func (t *End) readPayload(r *binReader) error  { return nil }
func (t *End) writePayload(w *binWriter) error { return nil }

func (t *End) parseValue(p *textParser) error {
	return p.syntaxError("end tag has no textual form")
}

func (t *End) writeValue(p *textPrinter, pretty bool, depth int) error { return nil }
