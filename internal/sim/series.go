package sim

// Series is the sampled trajectory of one simulation: three equal-length
// columns, Time strictly increasing and evenly spaced over [0, duration].
// Producers own the backing arrays; consumers treat a Series as read-only.
type Series struct {
	Time     []float64
	Prey     []float64
	Predator []float64
}

func (s *Series) Len() int { return len(s.Time) }

// Final returns the last sampled populations.
func (s *Series) Final() (prey, predator float64) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	return s.Prey[n-1], s.Predator[n-1]
}

func newSeries(n int) *Series {
	return &Series{
		Time:     make([]float64, n),
		Prey:     make([]float64, n),
		Predator: make([]float64, n),
	}
}
