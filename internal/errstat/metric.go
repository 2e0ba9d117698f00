package errstat

import "math"

// MaxDeviation tracks the largest absolute pointwise error seen.
type MaxDeviation struct {
	name string
	max  float64
}

func NewMaxDeviation() *MaxDeviation {
	return &MaxDeviation{name: "max_deviation"}
}

func (m *MaxDeviation) Name() string { return m.name }

func (m *MaxDeviation) Observe(x, exact, t float64) {
	if d := math.Abs(x - exact); d > m.max {
		m.max = d
	}
}

func (m *MaxDeviation) Value() float64 { return m.max }
func (m *MaxDeviation) Reset()         { m.max = 0 }

// SignFlips counts sign changes in the numerical trajectory. A decaying
// exponential never changes sign, so any flip means the step size pushed
// explicit Euler past its stability limit.
type SignFlips struct {
	name  string
	prev  float64
	seen  bool
	flips int
}

func NewSignFlips() *SignFlips {
	return &SignFlips{name: "sign_flips"}
}

func (s *SignFlips) Name() string { return s.name }

func (s *SignFlips) Observe(x, exact, t float64) {
	if s.seen && x*s.prev < 0 {
		s.flips++
	}
	if x != 0 {
		s.prev = x
		s.seen = true
	}
}

func (s *SignFlips) Value() float64 { return float64(s.flips) }

func (s *SignFlips) Reset() {
	s.prev = 0
	s.seen = false
	s.flips = 0
}
