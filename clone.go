package skipset

import (
	randv2 "math/rand/v2"
	"sync"
)

// Clone returns a deep copy of the set. The copy shares no nodes with the
// original, so mutating either afterwards never affects the other. Node
// heights are re-drawn from a fresh source; the element sequence is what
// defines the copy, not the level topology.
func (s *Set[T]) Clone() *Set[T] {
	s.headNode()

	clone := New[T](s.less)
	for x := s.head.next[0]; x != nil; x = x.next[0] {
		clone.Insert(x.value)
	}
	return clone
}

// Move transfers the set's contents into a new instance and resets the
// receiver to a valid empty state. The returned set owns the original head
// sentinel and counters; no nodes are copied.
func (s *Set[T]) Move() *Set[T] {
	s.headNode()

	moved := &Set[T]{
		less:   s.less,
		head:   s.head,
		level:  s.level,
		length: s.length,
		rng:    s.rng,
		pool:   s.pool,
		stats:  s.stats,
	}

	s.head = newHead[T]()
	s.level = 0
	s.length = 0
	s.rng = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	s.pool = &sync.Pool{}
	s.stats = Stats{}

	return moved
}
