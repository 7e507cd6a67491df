package skipset

// findPredecessors walks the list from the head at every occupied level,
// recording per level the last node whose value is strictly less than the
// target. The final level-0 predecessor therefore sits immediately before
// the first node whose value is >= target, which is all Insert, Erase and
// Contains need to do their work.
//
// Slots above the current level are left nil; Insert backfills them with
// the head when a new node raises the level.
func (s *Set[T]) findPredecessors(value T) []*node[T] {
	update := make([]*node[T], MaxLevel+1)

	x := s.head
	for i := s.level; i >= 0; i-- {
		for x.next[i] != nil && s.less(x.next[i].value, value) {
			x = x.next[i]
		}
		update[i] = x
	}
	return update
}
