package ode

import (
	"fmt"
	"math"
	"time"
)

// System is a scalar first-order ODE right-hand side: dx/dt = Rate(x, t).
type System interface {
	Rate(x, t float64) float64
}

// ExactSolution evaluates a closed-form reference trajectory pointwise.
type ExactSolution interface {
	At(t float64) float64
}

// Model couples a system with its known exact solution.
type Model interface {
	System
	ExactSolution
}

// Config holds the run parameters. It is passed by value and never mutated
// after a run starts.
type Config struct {
	A    float64
	X0   float64
	TMin float64
	TMax float64
}

func DefaultConfig() Config {
	return Config{A: 1.0, X0: 1.0, TMin: 0, TMax: 5.0}
}

func (c Config) Validate() error {
	if c.TMax < c.TMin {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, c.TMin, c.TMax)
	}
	if math.IsNaN(c.A) || math.IsNaN(c.X0) {
		return fmt.Errorf("%w: NaN parameter", ErrInvalidState)
	}
	return nil
}

// Result is the output of a single integration run.
type Result struct {
	Times   []float64
	Values  []float64
	H       float64
	Elapsed time.Duration
}

// Steps returns the number of update steps taken (grid points minus one).
func (r *Result) Steps() int {
	if len(r.Times) == 0 {
		return 0
	}
	return len(r.Times) - 1
}

func (r *Result) IsValid() bool {
	for _, v := range r.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Summary reduces a trajectory's pointwise deviation from the reference to
// two scalars. Both are non-negative; RMSPercent is zero iff the trajectory
// matches the reference at every grid point.
type Summary struct {
	RMS        float64
	RMSPercent float64
}

// Metric observes (numeric, exact) pairs during a pass over a trajectory and
// reduces them to a single value.
type Metric interface {
	Name() string
	Observe(x, exact, t float64)
	Value() float64
	Reset()
}
