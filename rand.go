package skipset

const float64Unit = 1.0 / (1 << 53)

// randomLevel draws a level in [0, MaxLevel] from a geometric distribution:
// each additional level is granted with probability P. The source of
// randomness is the one injected at construction, so a scripted source
// yields scripted heights without touching any traversal code.
func (s *Set[T]) randomLevel() int {
	level := 0
	for level < MaxLevel {
		sample := float64(s.rng.Uint64()>>11) * float64Unit
		if sample >= P {
			break
		}
		level++
	}
	return level
}
