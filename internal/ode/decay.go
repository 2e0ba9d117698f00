package ode

import "math"

// LinearDecay is the model dx/dt = -A*x with initial condition x(t_min) = x0
// and closed-form solution x(t) = x0 * exp(-A*(t - tMin)).
type LinearDecay struct {
	a    float64
	x0   float64
	tMin float64
}

func NewLinearDecay(a, x0 float64) *LinearDecay {
	return &LinearDecay{a: a, x0: x0}
}

// NewLinearDecayAt shifts the initial condition to t = tMin instead of 0.
func NewLinearDecayAt(a, x0, tMin float64) *LinearDecay {
	return &LinearDecay{a: a, x0: x0, tMin: tMin}
}

// FromConfig builds the decay model described by cfg.
func FromConfig(cfg Config) *LinearDecay {
	return NewLinearDecayAt(cfg.A, cfg.X0, cfg.TMin)
}

func (d *LinearDecay) Rate(x, t float64) float64 {
	return -d.a * x
}

func (d *LinearDecay) At(t float64) float64 {
	return d.x0 * math.Exp(-d.a*(t-d.tMin))
}

func (d *LinearDecay) A() float64  { return d.a }
func (d *LinearDecay) X0() float64 { return d.x0 }

// StabilityLimit returns the largest step size for which explicit Euler stays
// qualitatively correct on this model (h < 1/A). Steps at or beyond the limit
// oscillate or diverge; the stepper reproduces that faithfully.
func (d *LinearDecay) StabilityLimit() float64 {
	if d.a <= 0 {
		return math.Inf(1)
	}
	return 1 / d.a
}
