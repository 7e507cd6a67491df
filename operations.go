package skipset

// Insert adds value to the set. Inserting a value that is already present
// is a no-op: no error, no size change.
func (s *Set[T]) Insert(value T) {
	s.headNode()

	update := s.findPredecessors(value)
	if next := update[0].next[0]; next != nil && next.value == value {
		s.stats.Duplicates++
		return
	}

	level := s.randomLevel()
	if level > s.level {
		// No real node exists above the old level yet, so the head is
		// the predecessor there.
		for i := s.level + 1; i <= level; i++ {
			update[i] = s.head
		}
		s.level = level
	}

	n := s.acquireNode(value, level)
	for i := 0; i <= level; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}

	s.length++
	s.stats.Inserts++
}

// Contains reports whether value is present in the set.
func (s *Set[T]) Contains(value T) bool {
	s.headNode()
	s.stats.Searches++

	update := s.findPredecessors(value)
	next := update[0].next[0]
	return next != nil && next.value == value
}

// Erase removes value from the set. It returns true if an element was
// removed and false if the value was absent, in which case the set is left
// untouched.
func (s *Set[T]) Erase(value T) bool {
	s.headNode()

	update := s.findPredecessors(value)
	victim := update[0].next[0]
	if victim == nil || victim.value != value {
		s.stats.EraseMisses++
		return false
	}

	for i := 0; i <= victim.topLevel(); i++ {
		// Values are unique, so a predecessor link that bypasses the
		// victim means no level above references it either.
		if update[i].next[i] != victim {
			break
		}
		update[i].next[i] = victim.next[i]
	}

	for s.level > 0 && s.head.next[s.level] == nil {
		s.level--
	}

	s.length--
	s.stats.Erases++
	s.releaseNode(victim)
	return true
}

// Min returns the smallest element of the set, or EOI when the set is
// empty.
func (s *Set[T]) Min() (T, error) {
	if first := s.headNode().next[0]; first != nil {
		return first.value, nil
	}
	var zero T
	return zero, EOI
}
