package nbt

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrUnterminatedCompound is returned by the binary decoder when the input
// ends before a compound's closing End marker is read.
var ErrUnterminatedCompound = errors.New("nbt: compound is missing its closing End tag")

// errTruncated wraps io.ErrUnexpectedEOF so callers can detect truncated
// input with errors.Is.
func errTruncated() error {
	return fmt.Errorf("nbt: truncated input: %w", io.ErrUnexpectedEOF)
}

func isTruncated(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// A RootTypeError is returned by the file-level helpers when the decoded
// root tag is not a Compound.
type RootTypeError struct {
	Type Type
}

func (e *RootTypeError) Error() string {
	return fmt.Sprintf("nbt: root tag is a %s, not a Compound", e.Type)
}

// A SyntaxError is returned by the SNBT parser for malformed input. Offset
// is the rune offset at which the error was detected.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("nbt: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// A MarshalerError represents an error from calling a MarshalNBT or
// UnmarshalNBT method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "nbt: error calling custom marshaler for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
