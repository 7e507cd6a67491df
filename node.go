package skipset

const (
	// MaxLevel bounds the tallest level a node may occupy. Level indices
	// run from 0 (every node) to MaxLevel.
	MaxLevel = 16

	// P is the probability of a node being promoted to the next level,
	// giving the geometric height distribution.
	P = 0.25
)

// node holds one element and its per-level forward links. A node of level k
// carries k+1 links and is linked into the list at every level 0..k. The
// level is fixed at creation.
type node[T comparable] struct {
	value T
	next  []*node[T]
}

func newNode[T comparable](value T, level int) *node[T] {
	return &node[T]{
		value: value,
		next:  make([]*node[T], level+1),
	}
}

// newHead creates the valueless head sentinel with a link at every level.
func newHead[T comparable]() *node[T] {
	return &node[T]{next: make([]*node[T], MaxLevel+1)}
}

func (n *node[T]) topLevel() int {
	return len(n.next) - 1
}
