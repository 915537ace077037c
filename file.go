package nbt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFile decodes the binary NBT file at path. The root tag must be a
// Compound; any other variant yields a RootTypeError.
func ReadFile(path string) (*Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tag, err := ReadTag(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	return requireCompound(tag)
}

// WriteFile encodes root as binary NBT to the file at path, creating
// parent directories as needed.
func WriteFile(path string, root *Compound) error {
	return writeToFile(path, func(w io.Writer) error {
		return WriteTag(w, root)
	})
}

// ParseFile decodes the SNBT file at path. The root tag must be a
// Compound; any other variant yields a RootTypeError.
func ParseFile(path string, opts ...Option) (*Compound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tag, err := ParseReader(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, err
	}
	return requireCompound(tag)
}

// StringifyFile encodes root as SNBT to the file at path, creating parent
// directories as needed.
func StringifyFile(path string, root *Compound, opts ...Option) error {
	return writeToFile(path, func(w io.Writer) error {
		return StringifyTo(w, root, opts...)
	})
}

func requireCompound(tag Tag) (*Compound, error) {
	c, ok := tag.(*Compound)
	if !ok {
		return nil, &RootTypeError{Type: tag.Type()}
	}
	return c, nil
}

func writeToFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("nbt: closing %s: %w", path, err)
	}
	return nil
}
