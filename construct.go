package jsonslicer

// Construct engine (C7): builds the in-memory value for a matched
// sub-tree. Children are linked into their parent container at creation
// time (spec.md §3 "Ownership"), so closing a container only requires
// popping the stack — the value is already in place, and no backpointer
// is ever needed (spec.md §9).

// constructStartContainer creates an empty map or array, links it into the
// current top-of-stack container (if any — there is none for the
// outermost matched container), and pushes it as the new top.
func (s *Slicer) constructStartContainer(kind Kind) {
	var v *Value
	if kind == KindObject {
		v = newEmptyObject()
	} else {
		v = newEmptyArray()
	}
	if !s.constructStack.empty() {
		s.installChild(v)
	}
	s.constructStack.pushBack(&containerFrame{v: v})
}

// constructEndContainer pops the constructing stack. If it becomes empty,
// the popped container is the fully matched sub-tree.
func (s *Slicer) constructEndContainer() (*Value, bool) {
	frame, _ := s.constructStack.popBack()
	return frame.v, s.constructStack.empty()
}

// constructScalar installs a scalar produced while CONSTRUCTING into the
// top container. It is never called with an empty stack: a scalar that
// matches the pattern directly is handled as an immediate one-shot emit in
// seekScalar, without ever entering CONSTRUCTING.
func (s *Slicer) constructScalar(v *Value) error {
	if s.constructStack.empty() {
		return &InternalError{Message: "scalar event while constructing with an empty stack"}
	}
	return s.installChild(v)
}

// installChild installs v into the current top container: appended if
// it's an array, or installed at the pending last map key (then cleared)
// if it's a map.
func (s *Slicer) installChild(v *Value) error {
	top := *s.constructStack.back()
	switch top.v.kind {
	case KindArray:
		top.v.arrayV = append(top.v.arrayV, v)
	case KindObject:
		if s.lastMapKey == nil {
			return &InternalError{Message: "map value with no pending key"}
		}
		top.v.objectV = append(top.v.objectV, Pair{Key: string(s.lastMapKey), Val: v})
		s.lastMapKey = nil
	default:
		return &InternalError{Message: "unexpected container kind on constructing stack"}
	}
	return nil
}
