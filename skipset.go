// Package skipset implements a sorted, duplicate-free set of values backed
// by a probabilistic skip list. Insertion, membership test and deletion run
// in O(log n) expected time; iteration yields elements in ascending order.
//
// The set is not safe for concurrent use. Callers sharing a set across
// goroutines must serialize access externally.
package skipset

import (
	"cmp"
	"errors"
	randv2 "math/rand/v2"
	"sync"
)

// Less is a function that returns true if a is less than b. It must define a
// strict total order over the element type.
type Less[T comparable] func(a, b T) bool

// EOI is end of iteration. It is returned when advancing an exhausted
// iterator or when peeking into an empty set.
//
//lint:ignore ST1012 this is a sentinel error, not a typical error
var EOI = errors.New("EOI")

// ErrMalformedList is the panic value raised when a set was not constructed
// with New or NewOrdered.
var ErrMalformedList = errors.New("the set was not init-ed properly")

// Set is an ordered set of unique values implemented as a skip list. The
// zero value is not usable; construct instances with New or NewOrdered.
type Set[T comparable] struct {
	less   Less[T]
	head   *node[T]
	level  int
	length int
	rng    randv2.Source
	pool   *sync.Pool
	stats  Stats
}

type config struct {
	src randv2.Source
}

// Option configures a Set at construction time.
type Option func(*config)

// WithRandSource replaces the level generator's source of randomness.
// Supplying a fixed-seed or scripted source makes node heights
// deterministic, which tests rely on.
func WithRandSource(src randv2.Source) Option {
	return func(c *config) { c.src = src }
}

// New returns an empty set ordered by the given less function.
func New[T comparable](less Less[T], opts ...Option) *Set[T] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}
	return &Set[T]{
		less: less,
		head: newHead[T](),
		rng:  cfg.src,
		pool: &sync.Pool{},
	}
}

// NewOrdered returns an empty set of a naturally ordered element type.
func NewOrdered[T cmp.Ordered](opts ...Option) *Set[T] {
	return New[T](func(a, b T) bool { return a < b }, opts...)
}

// headNode returns the head sentinel, panicking if the set was not
// initialized through a constructor.
func (s *Set[T]) headNode() *node[T] {
	if s == nil || s.head == nil {
		panic(ErrMalformedList)
	}
	return s.head
}

// Len returns the number of elements currently stored in the set.
func (s *Set[T]) Len() int {
	s.headNode()
	return s.length
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return s.Len() == 0
}

// Level returns the highest level index occupied by any element, or 0 for
// an empty set.
func (s *Set[T]) Level() int {
	s.headNode()
	return s.level
}

// Clear removes all elements, resetting the set to its initial empty state.
// Operation counters are preserved.
func (s *Set[T]) Clear() {
	s.headNode()
	s.head = newHead[T]()
	s.level = 0
	s.length = 0
}
