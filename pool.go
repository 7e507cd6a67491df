package skipset

// acquireNode returns a node for the given value and level, reusing a
// previously erased node when one is available.
func (s *Set[T]) acquireNode(value T, level int) *node[T] {
	recycled, ok := s.pool.Get().(*node[T])
	if !ok {
		return newNode(value, level)
	}

	if cap(recycled.next) < level+1 {
		recycled.next = make([]*node[T], level+1)
	} else {
		recycled.next = recycled.next[:level+1]
		for i := range recycled.next {
			recycled.next[i] = nil
		}
	}

	recycled.value = value
	s.stats.NodeReuses++
	return recycled
}

// releaseNode hands an unlinked node back for reuse. The value is zeroed so
// erased elements do not linger in memory.
func (s *Set[T]) releaseNode(n *node[T]) {
	if n == nil || n == s.head {
		return
	}

	var zero T
	n.value = zero
	for i := range n.next {
		n.next[i] = nil
	}

	s.pool.Put(n)
}
