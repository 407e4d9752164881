package jsonslicer

import (
	"io"
	"iter"

	"golang.org/x/text/encoding"

	"github.com/AMDmi3/jsonslicer/internal/tokenizer"
)

type mode int8

const (
	seeking mode = iota
	constructing
)

// containerFrame is one entry of the constructing stack (C7): a
// partially-built map or array, already linked into its parent at
// creation time.
type containerFrame struct {
	v *Value
}

// Slicer is the aggregate state described in spec.md §4.4 (C4): the input
// reader, the tokenizer, configuration, the pattern, the current path, the
// constructing stack, the completed-item queue, the last map key, and the
// mode flag. It is not safe for concurrent use (spec.md §5).
type Slicer struct {
	r         io.Reader
	tok       *tokenizer.Tokenizer
	readSize  int
	pathMode  PathMode
	binary    bool
	decoder   *encoding.Decoder
	errorMode ErrorMode

	pattern        *list[PathElem]
	path           *list[PathElem]
	constructStack *list[*containerFrame]
	queue          *list[Item]
	lastMapKey     []byte
	mode           mode

	buf      []byte
	readDone bool
	done     bool
	cur      Item
	err      error
}

// Option configures a Slicer at construction (functional-options
// convention, grounded in the majority configuration style of the
// reference corpus — see DESIGN.md).
type Option func(*tokOptions)

type tokOptions struct {
	readSize     int
	pathMode     PathMode
	binary       bool
	encodingName string
	errorMode    ErrorMode
	tok          tokenizer.Options
}

func defaultOptions() tokOptions {
	return tokOptions{
		readSize:     1024,
		pathMode:     PathIgnore,
		encodingName: "UTF-8",
		errorMode:    ErrorStrict,
		tok: tokenizer.Options{
			VerboseErrors: true,
		},
	}
}

// WithReadSize sets how many bytes are requested from the reader per pull
// step. Default 1024.
func WithReadSize(n int) Option {
	return func(o *tokOptions) {
		if n > 0 {
			o.readSize = n
		}
	}
}

// WithPathMode sets the output shape (C8). Default PathIgnore.
func WithPathMode(m PathMode) Option { return func(o *tokOptions) { o.pathMode = m } }

// WithAllowComments permits // and /* */ comments in the input.
func WithAllowComments(v bool) Option { return func(o *tokOptions) { o.tok.AllowComments = v } }

// WithSkipStringValidation skips UTF-8 validation of the input.
func WithSkipStringValidation(v bool) Option {
	return func(o *tokOptions) { o.tok.SkipStringValidation = v }
}

// WithAllowTrailingGarbage permits bytes after a complete top-level value.
func WithAllowTrailingGarbage(v bool) Option {
	return func(o *tokOptions) { o.tok.AllowTrailingGarbage = v }
}

// WithAllowMultipleValues permits a stream of concatenated top-level
// values instead of exactly one.
func WithAllowMultipleValues(v bool) Option {
	return func(o *tokOptions) { o.tok.AllowMultipleValues = v }
}

// WithAllowPartialValues permits the input to end mid-value without error.
func WithAllowPartialValues(v bool) Option {
	return func(o *tokOptions) { o.tok.AllowPartialValues = v }
}

// WithVerboseErrors controls whether parse errors carry a source snippet.
// Default true.
func WithVerboseErrors(v bool) Option { return func(o *tokOptions) { o.tok.VerboseErrors = v } }

// WithBinary keeps string payloads as raw bytes instead of decoding them.
func WithBinary(v bool) Option {
	return func(o *tokOptions) {
		o.binary = v
		o.tok.SkipStringValidation = o.tok.SkipStringValidation || v
	}
}

// WithEncoding selects the text codec used to decode string values and map
// keys captured from the input document (spec.md §4.4/§6's input_encoding/
// output_encoding). Accepts any WHATWG/IANA name htmlindex recognizes
// ("UTF-8", "ISO-8859-1", "windows-1252", "Shift_JIS", ...). Default
// "UTF-8", the fast path where captured bytes are used as-is. Has no
// effect under WithBinary, where payloads stay raw.
func WithEncoding(name string) Option {
	return func(o *tokOptions) { o.encodingName = name }
}

// WithErrorMode selects how WithEncoding's codec handles a byte sequence
// it cannot decode (spec.md §4.4/§6's input_errors/output_errors). Default
// ErrorStrict.
func WithErrorMode(m ErrorMode) Option {
	return func(o *tokOptions) { o.errorMode = m }
}

// New constructs a Slicer that reads JSON from r and yields every
// sub-value whose location matches pathPrefix (a sequence of string keys,
// int indices, and/or the Any wildcard).
func New(r io.Reader, pathPrefix []any, opts ...Option) (*Slicer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pathMode < PathIgnore || cfg.pathMode > PathFull {
		return nil, &ConfigError{Message: "invalid path_mode"}
	}
	codec, err := resolveCodec(cfg.encodingName)
	if err != nil {
		return nil, &ConfigError{Message: "unknown encoding " + cfg.encodingName}
	}
	if codec != nil {
		cfg.tok.SkipStringValidation = true
	}
	pattern, err := buildPattern(pathPrefix)
	if err != nil {
		return nil, err
	}

	s := &Slicer{
		r:              r,
		readSize:       cfg.readSize,
		pathMode:       cfg.pathMode,
		binary:         cfg.binary,
		errorMode:      cfg.errorMode,
		pattern:        pattern,
		path:           &list[PathElem]{},
		constructStack: &list[*containerFrame]{},
		queue:          &list[Item]{},
		buf:            make([]byte, cfg.readSize),
	}
	if codec != nil {
		s.decoder = codec.NewDecoder()
	}
	s.tok = tokenizer.New(s, cfg.tok)
	return s, nil
}

// Scan advances the iterator. It returns false at end of input or on
// error; check Err to distinguish the two. This is the pull loop (C9).
func (s *Slicer) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	for {
		if item, ok := s.queue.popFront(); ok {
			s.cur = item
			return true
		}
		if s.readDone {
			s.done = true
			return false
		}

		n, rerr := s.r.Read(s.buf)
		if n > 0 {
			if ferr := s.tok.Feed(s.buf[:n]); ferr != nil {
				s.err = fromTokenizerErr(ferr)
				s.done = true
				return false
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				if cerr := s.tok.Complete(); cerr != nil {
					s.err = fromTokenizerErr(cerr)
					s.done = true
					return false
				}
				s.readDone = true
				continue
			}
			s.err = &IOError{Cause: rerr}
			s.done = true
			return false
		}
	}
}

// Item returns the most recent match produced by Scan.
func (s *Slicer) Item() Item { return s.cur }

// Err returns the error, if any, that ended iteration.
func (s *Slicer) Err() error { return s.err }

// All returns a range-over-func iterator equivalent to calling
// Scan/Item/Err in a loop, for Go 1.23+ callers (grounded in the
// iter.Seq-returning streaming JSON libraries in the reference corpus).
func (s *Slicer) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for s.Scan() {
			if !yield(s.Item()) {
				return
			}
		}
	}
}

// Close releases the path, constructing stack, and completed-item queue.
// It does not close the underlying reader, which the caller retains
// ownership of. Safe to call more than once.
func (s *Slicer) Close() error {
	s.path.clear()
	s.constructStack.clear()
	s.queue.clear()
	s.pattern.clear()
	return nil
}

func (s *Slicer) bumpTailIndex() {
	if tail := s.path.back(); tail != nil {
		tail.bump()
	}
}
