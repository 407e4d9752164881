package jsonslicer

import "fmt"

// buildPattern converts a caller-supplied path prefix (string, int, or the
// Any wildcard sentinel) into the pattern's internal list representation
// (C4's construction step). Returned pattern elements are owned
// exclusively by the resulting list; the caller's slice is not retained.
func buildPattern(prefix []any) (*list[PathElem], error) {
	pat := &list[PathElem]{}
	for i, e := range prefix {
		switch v := e.(type) {
		case string:
			pat.pushBack(mapKeyElem([]byte(v)))
		case []byte:
			pat.pushBack(mapKeyElem(append([]byte(nil), v...)))
		case int:
			pat.pushBack(indexElem(int64(v)))
		case int64:
			pat.pushBack(indexElem(v))
		default:
			if isWildcard(e) {
				pat.pushBack(wildcardElem())
				continue
			}
			return nil, &ConfigError{Message: fmt.Sprintf("path_prefix[%d]: unsupported element type %T", i, e)}
		}
	}
	return pat, nil
}

func isWildcard(e any) bool {
	_, ok := e.(struct{ jsonslicerWildcard byte })
	return ok
}
