// Package integrate implements fixed-step explicit Euler integration.
package integrate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/nkoval/eulersim/internal/ode"
)

// Euler is the explicit first-order scheme x[i+1] = x[i] + f(x[i], t[i])*h.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step advances the state by one increment of size h.
func (e *Euler) Step(sys ode.System, x, t, h float64) float64 {
	return x + sys.Rate(x, t)*h
}

// Grid builds the uniform time grid for [tMin, tMax] with spacing h. The grid
// has floor((tMax-tMin)/h)+2 points so the final point lands at or beyond
// tMax; it may overshoot tMax by up to one h and is deliberately not clamped.
// Points are computed as tMin + i*h rather than by accumulation, so the grid
// is bit-identical across calls with the same arguments.
func Grid(tMin, tMax, h float64) ([]float64, error) {
	if h <= 0 || math.IsNaN(h) {
		return nil, fmt.Errorf("%w: got %g", ode.ErrInvalidStep, h)
	}
	if tMax < tMin {
		return nil, fmt.Errorf("%w: [%g, %g]", ode.ErrInvalidRange, tMin, tMax)
	}
	n := int(math.Floor((tMax-tMin)/h)) + 2
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = tMin + float64(i)*h
	}
	return ts, nil
}

// Integrate runs the scheme over [cfg.TMin, cfg.TMax] starting at cfg.X0 and
// returns the grid, the trajectory, and the wall-clock duration of the update
// loop. The duration is informational only; it does not affect the numeric
// outputs. Inputs that make explicit Euler unstable (h >= 1/A for the decay
// model) are not rejected: the oscillating or diverging trajectory is part of
// the answer.
func (e *Euler) Integrate(ctx context.Context, sys ode.System, cfg ode.Config, h float64) (*ode.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ts, err := Grid(cfg.TMin, cfg.TMax, h)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(ts))
	xs[0] = cfg.X0

	start := time.Now()
	for i := 0; i < len(ts)-1; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		xs[i+1] = e.Step(sys, xs[i], ts[i], h)
	}
	elapsed := time.Since(start)

	return &ode.Result{Times: ts, Values: xs, H: h, Elapsed: elapsed}, nil
}
