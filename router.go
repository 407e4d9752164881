package jsonslicer

// SAX event router (C5): Slicer implements tokenizer.Handler directly,
// dispatching each of the ten events to the seek or construct engine
// depending on the current mode, and handling the SEEKING<->CONSTRUCTING
// transitions.

func (s *Slicer) scalarEvent(v *Value) error {
	if s.mode == seeking {
		return s.seekScalar(v)
	}
	return s.constructScalar(v)
}

func (s *Slicer) Null() error             { return s.scalarEvent(newNull()) }
func (s *Slicer) Bool(v bool) error       { return s.scalarEvent(newBool(v)) }
func (s *Slicer) Integer(v int64) error   { return s.scalarEvent(newInteger(v)) }
func (s *Slicer) Number(v float64) error  { return s.scalarEvent(newNumber(v)) }

func (s *Slicer) String(v []byte) error {
	if s.binary {
		return s.scalarEvent(newRawString(append([]byte(nil), v...)))
	}
	text, err := s.decodeText(v)
	if err != nil {
		return err
	}
	return s.scalarEvent(newString(string(text)))
}

func (s *Slicer) MapKey(v []byte) error {
	key := append([]byte(nil), v...)
	if !s.binary {
		text, err := s.decodeText(key)
		if err != nil {
			return err
		}
		key = text
	}
	if s.mode == seeking {
		return s.seekMapKey(key)
	}
	s.lastMapKey = key
	return nil
}

func (s *Slicer) StartMap() error {
	if s.mode == seeking {
		return s.seekStartContainer(KindObject)
	}
	s.constructStartContainer(KindObject)
	return nil
}

func (s *Slicer) StartArray() error {
	if s.mode == seeking {
		return s.seekStartContainer(KindArray)
	}
	s.constructStartContainer(KindArray)
	return nil
}

func (s *Slicer) EndMap() error { return s.endContainer() }

func (s *Slicer) EndArray() error { return s.endContainer() }

func (s *Slicer) endContainer() error {
	if s.mode == seeking {
		return s.seekEndContainer()
	}
	v, done := s.constructEndContainer()
	if done {
		s.queue.pushBack(format(s.pathMode, s.path, v, s.binary))
		s.mode = seeking
		s.bumpTailIndex()
	}
	return nil
}
