package jsonslicer

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrorMode selects how a text codec handles a byte sequence it cannot
// decode, mirroring spec.md §6's input_errors/output_errors knob (modeled
// on the codec error-handler names of the host this was distilled from:
// "strict", "replace", "ignore").
type ErrorMode int8

const (
	// ErrorStrict fails the read with an *EncodingError on the first
	// sequence the chosen codec cannot decode. Default.
	ErrorStrict ErrorMode = iota
	// ErrorReplace keeps the codec's substitution characters for any
	// sequence it could not decode.
	ErrorReplace
	// ErrorIgnore behaves like ErrorReplace (the underlying codec, not
	// this package, performs the substitution); kept as a distinct,
	// named mode for parity with the host's "ignore" handler.
	ErrorIgnore
)

// resolveCodec looks up name the way htmlindex does (WHATWG/IANA encoding
// names: "UTF-8", "ISO-8859-1", "windows-1252", "Shift_JIS", ...). The
// empty string and any case-insensitive spelling of "UTF-8" resolve to nil,
// the fast path where matched string values and map keys are used exactly
// as captured (already validated as UTF-8 by the tokenizer).
func resolveCodec(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return nil, nil
	}
	return htmlindex.Get(name)
}

// decodeText converts raw bytes captured from the input document (a
// matched string value, or a map key) into canonical UTF-8 text, using the
// codec configured via WithEncoding. With the default codec (UTF-8) this
// is a no-op: the bytes are already valid UTF-8, enforced by the
// tokenizer. With any other codec it re-decodes the original source bytes
// (see internal/tokenizer's curRaw, preserved verbatim precisely so this
// step has the real encoded bytes to work with, not a substituted
// placeholder).
func (s *Slicer) decodeText(raw []byte) ([]byte, error) {
	if s.decoder == nil {
		return raw, nil
	}
	out, err := s.decoder.Bytes(raw)
	if err != nil {
		if s.errorMode == ErrorStrict {
			return nil, &EncodingError{Message: "cannot decode value with configured encoding", Cause: err}
		}
		// ErrorReplace/ErrorIgnore: fall through to the
		// codec's own best-effort output below.
	}
	return out, nil
}
