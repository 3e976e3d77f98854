// Package yamlutil decodes YAML documents behind a size limit, keeping the
// YAML library out of callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DefaultMaxSize limits YAML input to prevent memory exhaustion (1MB).
const DefaultMaxSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrDecode         = errors.New("yamlutil: decode failed")
)

type options struct {
	strict  bool
	maxSize int
}

// Option configures Decode.
type Option func(*options)

// Strict rejects fields that do not exist in the destination.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// MaxSize overrides DefaultMaxSize. Values <= 0 are ignored.
func MaxSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// Decode parses data into v. Syntax and field errors are wrapped in
// ErrDecode, with the offending source line in the message.
func Decode(data []byte, v any, opts ...Option) error {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}

	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > o.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), o.maxSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	var decodeOpts []yaml.DecodeOption
	if o.strict {
		decodeOpts = append(decodeOpts, yaml.Strict())
	}

	if err := yaml.UnmarshalWithOptions(data, v, decodeOpts...); err != nil {
		return fmt.Errorf("%w:\n%s", ErrDecode, yaml.FormatError(err, false, true))
	}
	return nil
}
