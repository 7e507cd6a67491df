package skipset

// Equal reports whether both sets hold the same elements. Insertion order
// is irrelevant since both iterate in ascending order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	s.headNode()
	other.headNode()

	if s.length != other.length {
		return false
	}
	a, b := s.head.next[0], other.head.next[0]
	for a != nil && b != nil {
		if a.value != b.value {
			return false
		}
		a, b = a.next[0], b.next[0]
	}
	return a == nil && b == nil
}

// Compare orders two sets lexicographically by their ascending element
// sequences: -1 if s sorts before other, 0 if the sequences are identical,
// +1 otherwise. A set that is a strict prefix of the other sorts first.
func (s *Set[T]) Compare(other *Set[T]) int {
	s.headNode()
	other.headNode()

	a, b := s.head.next[0], other.head.next[0]
	for a != nil && b != nil {
		switch {
		case s.less(a.value, b.value):
			return -1
		case s.less(b.value, a.value):
			return 1
		}
		a, b = a.next[0], b.next[0]
	}
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}

// Less reports whether s sorts strictly before other.
func (s *Set[T]) Less(other *Set[T]) bool {
	return s.Compare(other) < 0
}

// LessOrEqual reports whether s sorts before other or equals it.
func (s *Set[T]) LessOrEqual(other *Set[T]) bool {
	return s.Compare(other) <= 0
}

// Greater reports whether s sorts strictly after other.
func (s *Set[T]) Greater(other *Set[T]) bool {
	return s.Compare(other) > 0
}

// GreaterOrEqual reports whether s sorts after other or equals it.
func (s *Set[T]) GreaterOrEqual(other *Set[T]) bool {
	return s.Compare(other) >= 0
}
