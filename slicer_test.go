package jsonslicer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingReader returns a fixed error on every Read, simulating a broken
// caller-supplied io.Reader (a dropped connection, a closed file).
type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func collectAll(t *testing.T, r *strings.Reader, prefix []any, opts ...Option) []Item {
	t.Helper()
	s, err := New(r, prefix, opts...)
	require.NoError(t, err)
	defer s.Close()

	var out []Item
	for s.Scan() {
		out = append(out, s.Item())
	}
	require.NoError(t, s.Err())
	return out
}

func ints(t *testing.T, items []Item) []int64 {
	t.Helper()
	out := make([]int64, len(items))
	for i, it := range items {
		v, err := it.Value.AsInteger()
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestWildcardTopLevel(t *testing.T) {
	items := collectAll(t, strings.NewReader(`[1,2,3]`), []any{Any})
	require.Equal(t, []int64{1, 2, 3}, ints(t, items))
}

func TestMapKeysMode(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"a":1,"b":2}`), []any{Any}, WithPathMode(PathMapKeys))
	require.Len(t, items, 2)
	require.Equal(t, []any{"a"}, items[0].Path)
	require.Equal(t, []any{"b"}, items[1].Path)
	require.Equal(t, []int64{1, 2}, ints(t, items))
}

func TestFullModeWithArray(t *testing.T) {
	items := collectAll(t, strings.NewReader(`[10,20]`), []any{Any}, WithPathMode(PathFull))
	require.Len(t, items, 2)
	require.Equal(t, []any{0}, items[0].Path)
	require.Equal(t, []any{1}, items[1].Path)
}

func TestNestedPatternWithWildcard(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"items":[{"x":1},{"x":2}]}`), []any{"items", Any, "x"})
	require.Equal(t, []int64{1, 2}, ints(t, items))
}

func TestDeepNestedExactPath(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"a":{"b":{"c":42}}}`), []any{"a", "b", "c"})
	require.Equal(t, []int64{42}, ints(t, items))
}

func TestMultipleTopLevelValues(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"a":1} {"a":2}`), []any{"a"}, WithAllowMultipleValues(true))
	require.Equal(t, []int64{1, 2}, ints(t, items))
}

func TestEmptyInputYieldsNoItems(t *testing.T) {
	s, err := New(strings.NewReader(``), []any{Any})
	require.NoError(t, err)
	require.False(t, s.Scan())
	require.NoError(t, s.Err())
}

func TestPatternLongerThanAnyPathYieldsNoItems(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"a":1}`), []any{"a", "b"})
	require.Empty(t, items)
}

func TestEmptyPatternMatchesWholeDocument(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"a":1}`), nil)
	require.Len(t, items, 1)
	v, err := items[0].Value.Key("a").AsInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1, v)
}

func TestChunkedReadSizeMatchesOneShot(t *testing.T) {
	input := `{"items":[{"x":1},{"x":2},{"x":3}]}`
	whole := collectAll(t, strings.NewReader(input), []any{"items", Any, "x"})
	chunked := collectAll(t, strings.NewReader(input), []any{"items", Any, "x"}, WithReadSize(1))
	require.Equal(t, ints(t, whole), ints(t, chunked))
}

func TestBinaryModeYieldsRawBytes(t *testing.T) {
	items := collectAll(t, strings.NewReader(`{"name":"George"}`), []any{"name"}, WithBinary(true))
	require.Len(t, items, 1)
	require.Equal(t, KindRawString, items[0].Value.Type())
	b, err := items[0].Value.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("George"), b)
}

func TestInvalidConfigPathMode(t *testing.T) {
	_, err := New(strings.NewReader(`{}`), []any{Any}, WithPathMode(PathMode(99)))
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestUnsupportedPatternElement(t *testing.T) {
	_, err := New(strings.NewReader(`{}`), []any{3.14})
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestReaderFailureWrapsErrIO(t *testing.T) {
	readErr := errors.New("connection reset")
	s, err := New(failingReader{err: readErr}, []any{Any})
	require.NoError(t, err)
	require.False(t, s.Scan())
	require.True(t, errors.Is(s.Err(), ErrIO))
	var ioerr *IOError
	require.ErrorAs(t, s.Err(), &ioerr)
	require.Equal(t, readErr, ioerr.Cause)
}

func TestMalformedInputYieldsParseError(t *testing.T) {
	s, err := New(strings.NewReader(`{"a":}`), []any{Any})
	require.NoError(t, err)
	for s.Scan() {
	}
	require.Error(t, s.Err())
	var perr *ParseError
	require.ErrorAs(t, s.Err(), &perr)
}
