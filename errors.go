package jsonslicer

import (
	"errors"
	"fmt"

	"github.com/AMDmi3/jsonslicer/internal/tokenizer"
)

// Sentinel error kinds, matching spec.md §7's taxonomy. Callers distinguish
// a failure's kind with errors.Is, following the teacher's ErrType/ErrParse
// convention.
var (
	ErrConfig     = errors.New("jsonslicer: configuration error")
	ErrIO         = errors.New("jsonslicer: i/o error")
	ErrParse      = errors.New("jsonslicer: parse error")
	ErrInternal   = errors.New("jsonslicer: internal invariant error")
	ErrAllocation = errors.New("jsonslicer: allocation error")
	ErrEncoding   = errors.New("jsonslicer: encoding error")
)

// ConfigError reports an invalid construction argument (an unknown
// path_mode, an unknown encoding name, or an unsupported path prefix
// element type), raised from New.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("%s: %s", ErrConfig, e.Message) }
func (e *ConfigError) Unwrap() error { return ErrConfig }

// IOError wraps a failure returned by the caller-supplied reader.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string   { return fmt.Sprintf("%s: %s", ErrIO, e.Cause) }
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Cause} }

// ParseError reports input the tokenizer rejected; Offset and, when
// verbose errors are enabled, Snippet describe where.
type ParseError struct {
	Offset  int64
	Message string
	Snippet string
}

func (e *ParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("%s at byte %d: %s (near %q)", ErrParse, e.Offset, e.Message, e.Snippet)
	}
	return fmt.Sprintf("%s at byte %d: %s", ErrParse, e.Offset, e.Message)
}
func (e *ParseError) Unwrap() error { return ErrParse }

func fromTokenizerErr(err error) error {
	if err == nil {
		return nil
	}
	var pe *tokenizer.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Offset: pe.Offset, Message: pe.Message, Snippet: pe.Snippet}
	}
	return &InternalError{Message: err.Error()}
}

// InternalError signals a broken invariant — unexpected container type on
// the constructing stack, a scalar arriving with no pending map key, an
// unreachable mode value. It should never fire; its presence in a pull
// result means this package has a bug.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return fmt.Sprintf("%s: %s", ErrInternal, e.Message) }
func (e *InternalError) Unwrap() error { return ErrInternal }

// EncodingError reports a byte sequence the configured text codec could
// not decode (WithEncoding/WithErrorMode), raised under ErrorStrict from
// Slicer.decodeText.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrEncoding, e.Message, e.Cause)
}
func (e *EncodingError) Unwrap() []error { return []error{ErrEncoding, e.Cause} }
