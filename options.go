package nbt

import "fmt"

const defaultMaxDepth = 512

type options struct {
	pretty   bool
	maxDepth int
}

// Option configures the SNBT codec entry points.
type Option func(*options) error

// Pretty returns an Option that makes the printer emit one member per line
// with tab indentation proportional to nesting depth. Without it, output is
// a single line with ", " separators.
func Pretty() Option {
	return func(o *options) error {
		o.pretty = true
		return nil
	}
}

// MaxDepth returns an Option that sets the maximum nesting depth for the
// SNBT parser. This guards against stack exhaustion on deeply nested input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("nbt: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
