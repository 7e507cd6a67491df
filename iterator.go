package skipset

// Iterator provides a forward-only view over the set in ascending order.
// It starts positioned before the first element; the first Next call yields
// the smallest value. Iterators are invalidated by any Insert or Erase that
// touches the node they stand on; using one across a mutation is a caller
// error the implementation does not detect.
type Iterator[T comparable] struct {
	set     *Set[T]
	current *node[T]
}

// Iterator returns a new iterator positioned before the first element.
// Each call produces an independent, restartable traversal.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{set: s, current: s.headNode()}
}

// HasNext reports whether calling Next will succeed.
func (it *Iterator[T]) HasNext() bool {
	return it != nil && it.current != nil && it.current.next[0] != nil
}

// Next advances to the next element and returns it. It returns EOI when
// the iteration is exhausted.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, EOI
	}
	it.current = it.current.next[0]
	return it.current.value, nil
}

// Value returns the element at the iterator's current position. It returns
// EOI if the iterator has not been advanced yet or has run past the end.
func (it *Iterator[T]) Value() (T, error) {
	if it == nil || it.current == nil || it.current == it.set.head {
		var zero T
		return zero, EOI
	}
	return it.current.value, nil
}

// Equal reports whether two iterators stand on the same underlying node.
// Iterators from different traversals over the same set compare equal at
// equal positions.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.current == other.current
}

// Each calls fn for every element in ascending order.
func (s *Set[T]) Each(fn func(value T)) {
	for x := s.headNode().next[0]; x != nil; x = x.next[0] {
		fn(x.value)
	}
}

// Values returns all elements in ascending order.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Len())
	s.Each(func(value T) { values = append(values, value) })
	return values
}
