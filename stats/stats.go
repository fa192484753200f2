package stats

// Stats accumulates observations for one station in integer tenths of a
// degree, so hundreds of millions of additions stay exact.
type Stats struct {
	Min   int32
	Max   int32
	Sum   int64
	Count int64
}

// New seeds an accumulator from its first observation.
func New(tenths int32) Stats {
	return Stats{Min: tenths, Max: tenths, Sum: int64(tenths), Count: 1}
}

// Add folds one observation in.
func (s *Stats) Add(tenths int32) {
	if tenths < s.Min {
		s.Min = tenths
	}
	if tenths > s.Max {
		s.Max = tenths
	}
	s.Sum += int64(tenths)
	s.Count++
}

// Merge combines two accumulators. The operation is associative and
// commutative, so merge order never changes the result.
func (s *Stats) Merge(o Stats) {
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum += o.Sum
	s.Count += o.Count
}
