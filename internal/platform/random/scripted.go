package random

// Scripted replays fixed values and then falls back to another source. It is
// used to force specific branches of the simulation in tests and replays.
type Scripted struct {
	Floats   []float64
	Ints     []int
	Fallback Source
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) > 0 {
		v := s.Floats[0]
		s.Floats = s.Floats[1:]
		return v
	}
	if s.Fallback != nil {
		return s.Fallback.Float64()
	}
	return 0
}

func (s *Scripted) IntN(n int) int {
	if len(s.Ints) > 0 {
		v := s.Ints[0]
		s.Ints = s.Ints[1:]
		if v >= n {
			v = n - 1
		}
		return v
	}
	if s.Fallback != nil {
		return s.Fallback.IntN(n)
	}
	return 0
}
