package jsonslicer

// Seek engine (C6): maintains the current path while SEEKING and checks it
// against the pattern on every event that could become a terminal
// position (scalar events and container-start events).

// seekScalar is called for a scalar event while SEEKING. If the path (as
// it currently stands) matches the pattern, the scalar is the matched
// value: format and enqueue it immediately (mode never leaves SEEKING
// observably, per invariant 1's "transiently" carve-out). Either way, a
// scalar has just been fully consumed, so the trailing array index (if
// any) bumps for the next sibling.
func (s *Slicer) seekScalar(v *Value) error {
	if matchesPattern(s.path, s.pattern) {
		s.queue.pushBack(format(s.pathMode, s.path, v, s.binary))
	}
	s.bumpTailIndex()
	return nil
}

// seekStartContainer is called for start_map/start_array while SEEKING.
// On a match, switch to CONSTRUCTING and begin building; otherwise descend
// without constructing, pushing a sentinel (object) or a fresh index
// (array) path element.
func (s *Slicer) seekStartContainer(kind Kind) error {
	if matchesPattern(s.path, s.pattern) {
		s.mode = constructing
		s.constructStartContainer(kind)
		return nil
	}
	if kind == KindObject {
		s.path.pushBack(sentinelElem())
	} else {
		s.path.pushBack(indexElem(0))
	}
	return nil
}

// seekEndContainer pops the path element pushed by the matching
// seekStartContainer. If the container that just closed was itself an
// array element, its containing array's index element is now the tail;
// bump it, symmetric with seekScalar, so siblings (scalar or container
// alike) advance the same way.
func (s *Slicer) seekEndContainer() error {
	s.path.popBack()
	s.bumpTailIndex()
	return nil
}

// seekMapKey replaces the path tail (a sentinel on the first key, the
// previous key thereafter) with the newly seen key.
func (s *Slicer) seekMapKey(key []byte) error {
	s.path.popBack()
	s.path.pushBack(mapKeyElem(key))
	return nil
}
