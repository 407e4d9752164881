package jsonslicer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathElemBump(t *testing.T) {
	e := indexElem(0)
	e.bump()
	e.bump()
	require.True(t, e.IsIndex())
	require.EqualValues(t, 2, e.index)

	k := mapKeyElem([]byte("a"))
	k.bump()
	require.EqualValues(t, 0, k.index)
}

func TestMatchElem(t *testing.T) {
	require.True(t, matchElem(wildcardElem(), mapKeyElem([]byte("anything"))))
	require.True(t, matchElem(mapKeyElem([]byte("a")), mapKeyElem([]byte("a"))))
	require.False(t, matchElem(mapKeyElem([]byte("a")), mapKeyElem([]byte("b"))))
	require.True(t, matchElem(indexElem(3), indexElem(3)))
	require.False(t, matchElem(indexElem(3), indexElem(4)))
	require.False(t, matchElem(indexElem(3), mapKeyElem([]byte("a"))))
}

func TestMatchesPatternRequiresEqualLength(t *testing.T) {
	path := &list[PathElem]{}
	path.pushBack(mapKeyElem([]byte("a")))

	pattern := &list[PathElem]{}
	pattern.pushBack(mapKeyElem([]byte("a")))
	pattern.pushBack(wildcardElem())

	require.False(t, matchesPattern(path, pattern))

	path.pushBack(indexElem(0))
	require.True(t, matchesPattern(path, pattern))
}

func TestBuildPatternTypes(t *testing.T) {
	pat, err := buildPattern([]any{"a", 1, int64(2), Any})
	require.NoError(t, err)
	require.Equal(t, 4, pat.len())

	var kinds []elemKind
	pat.each(func(e *PathElem) { kinds = append(kinds, e.kind) })
	require.Equal(t, []elemKind{elemMapKey, elemIndex, elemIndex, elemWildcard}, kinds)
}

func TestBuildPatternRejectsUnsupportedType(t *testing.T) {
	_, err := buildPattern([]any{3.14})
	require.Error(t, err)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}
