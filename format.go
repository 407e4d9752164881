package jsonslicer

// PathMode governs the shape of emitted items (C8).
type PathMode int

const (
	// PathIgnore emits the value alone.
	PathIgnore PathMode = iota
	// PathMapKeys emits (key, value) when the match sits at a map entry,
	// the value alone otherwise.
	PathMapKeys
	// PathFull emits every current path element (indices as ints, keys
	// decoded per the binary setting) followed by the value.
	PathFull
)

// Item is one emitted match: Path is nil in PathIgnore mode, holds at most
// one element in PathMapKeys mode, and the full path in PathFull mode.
// Path elements are string, int, or []byte (binary mode map keys).
type Item struct {
	Path  []any
	Value *Value
}

// format wraps a completed value per path_mode (C8).
func format(mode PathMode, path *list[PathElem], v *Value, binary bool) Item {
	switch mode {
	case PathMapKeys:
		if tail := path.back(); tail != nil && tail.kind == elemMapKey {
			return Item{Path: []any{keyToAny(tail.key, binary)}, Value: v}
		}
		return Item{Value: v}
	case PathFull:
		out := make([]any, 0, path.len())
		path.each(func(e *PathElem) {
			switch e.kind {
			case elemMapKey:
				out = append(out, keyToAny(e.key, binary))
			case elemIndex:
				out = append(out, int(e.index))
			}
		})
		return Item{Path: out, Value: v}
	default:
		return Item{Value: v}
	}
}

func keyToAny(key []byte, binary bool) any {
	if binary {
		return append([]byte(nil), key...)
	}
	return string(key)
}
