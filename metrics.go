package skipset

// Stats counts the operations a set has performed over its lifetime. The
// counters are cumulative and survive Clear; they enable workload analysis
// in benchmarks and tooling without any external dependency on the set's
// internals.
type Stats struct {
	// Inserts is the number of calls that added an element.
	Inserts int64
	// Duplicates is the number of inserts rejected as already present.
	Duplicates int64
	// Erases is the number of calls that removed an element.
	Erases int64
	// EraseMisses is the number of erase calls for absent values.
	EraseMisses int64
	// Searches is the number of membership tests.
	Searches int64
	// NodeReuses is the number of inserts served from recycled nodes.
	NodeReuses int64
}

// Stats returns a snapshot of the set's operation counters.
func (s *Set[T]) Stats() Stats {
	s.headNode()
	return s.stats
}
