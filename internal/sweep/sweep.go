// Package sweep runs the stepper across a set of step sizes and collects
// per-step-size error and timing summaries.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/nkoval/eulersim/internal/errstat"
	"github.com/nkoval/eulersim/internal/integrate"
	"github.com/nkoval/eulersim/internal/ode"
)

// Point is the outcome of one step-size run.
type Point struct {
	H       float64
	Steps   int
	Summary ode.Summary
	Elapsed time.Duration
}

// Runner drives the stepper and error evaluator for a fixed model and time
// range while the step size varies.
type Runner struct {
	model ode.Model
	cfg   ode.Config
	integ *integrate.Euler
}

func New(model ode.Model, cfg ode.Config) *Runner {
	return &Runner{model: model, cfg: cfg, integ: integrate.NewEuler()}
}

// RunOne integrates at a single step size and returns the full trajectory
// alongside its summary point.
func (r *Runner) RunOne(ctx context.Context, h float64) (*ode.Result, Point, error) {
	res, err := r.integ.Integrate(ctx, r.model, r.cfg, h)
	if err != nil {
		return nil, Point{}, fmt.Errorf("integrate h=%g: %w", h, err)
	}
	sum, err := errstat.EvaluateResult(res, r.model)
	if err != nil {
		return nil, Point{}, fmt.Errorf("evaluate h=%g: %w", h, err)
	}
	return res, Point{H: h, Steps: res.Steps(), Summary: sum, Elapsed: res.Elapsed}, nil
}

// Run sweeps the step sizes in order, sequentially. Points come back in the
// same order as hs.
func (r *Runner) Run(ctx context.Context, hs []float64) ([]Point, error) {
	points := make([]Point, len(hs))
	for i, h := range hs {
		_, p, err := r.RunOne(ctx, h)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}
