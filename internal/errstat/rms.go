// Package errstat measures how far a numerical trajectory drifts from the
// closed-form reference.
package errstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nkoval/eulersim/internal/ode"
)

// Evaluate reduces the pointwise deviation of values from ref at times to an
// RMS absolute error and an RMS percent error. It fails with
// ode.ErrZeroReference if the reference is exactly zero at any grid point,
// since percent error is undefined there. For the decay model exp(-A*t) that
// cannot happen at finite t; the guard exists for reuse with other models.
func Evaluate(times, values []float64, ref ode.ExactSolution) (ode.Summary, error) {
	if len(times) != len(values) {
		return ode.Summary{}, fmt.Errorf("%w: %d times, %d values",
			ode.ErrLengthMismatch, len(times), len(values))
	}
	if len(times) == 0 {
		return ode.Summary{}, nil
	}

	exact := make([]float64, len(times))
	for i, t := range times {
		exact[i] = ref.At(t)
		if exact[i] == 0 {
			return ode.Summary{}, fmt.Errorf("%w at t=%g", ode.ErrZeroReference, t)
		}
	}

	diff := make([]float64, len(values))
	copy(diff, values)
	floats.Sub(diff, exact)

	sq := make([]float64, len(diff))
	rel := make([]float64, len(diff))
	for i, d := range diff {
		sq[i] = d * d
		r := values[i]/exact[i] - 1
		rel[i] = r * r
	}

	return ode.Summary{
		RMS:        math.Sqrt(stat.Mean(sq, nil)),
		RMSPercent: 100 * math.Sqrt(stat.Mean(rel, nil)),
	}, nil
}

// EvaluateResult is Evaluate over a stepper result.
func EvaluateResult(res *ode.Result, ref ode.ExactSolution) (ode.Summary, error) {
	return Evaluate(res.Times, res.Values, ref)
}

// Apply resets the given metrics and feeds them every (numeric, exact) pair
// of the result in grid order.
func Apply(res *ode.Result, ref ode.ExactSolution, ms ...ode.Metric) {
	for _, m := range ms {
		m.Reset()
	}
	for i, t := range res.Times {
		exact := ref.At(t)
		for _, m := range ms {
			m.Observe(res.Values[i], exact, t)
		}
	}
}
