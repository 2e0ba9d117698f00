package ode

import (
	"math"
	"testing"
)

func TestLinearDecayRate(t *testing.T) {
	d := NewLinearDecay(2.0, 1.0)

	if got := d.Rate(3.0, 0); got != -6.0 {
		t.Errorf("expected -6.0, got %g", got)
	}
	if got := d.Rate(0, 5.0); got != 0 {
		t.Errorf("rate at x=0 should be 0, got %g", got)
	}
}

func TestLinearDecayExact(t *testing.T) {
	d := NewLinearDecay(1.0, 1.0)

	if got := d.At(0); got != 1.0 {
		t.Errorf("x(0) should equal x0 exactly, got %g", got)
	}

	want := math.Exp(-2.0)
	if got := d.At(2.0); math.Abs(got-want) > 1e-15 {
		t.Errorf("x(2) = %g, want %g", got, want)
	}

	// monotone decay, never zero
	prev := d.At(0)
	for _, tt := range []float64{0.5, 1, 2, 5, 20} {
		v := d.At(tt)
		if v <= 0 {
			t.Fatalf("exact solution hit %g at t=%g", v, tt)
		}
		if v >= prev {
			t.Fatalf("exact solution not decreasing at t=%g", tt)
		}
		prev = v
	}
}

func TestLinearDecayShiftedOrigin(t *testing.T) {
	d := NewLinearDecayAt(1.0, 4.0, 2.0)

	if got := d.At(2.0); got != 4.0 {
		t.Errorf("x(t_min) should equal x0, got %g", got)
	}
}

func TestStabilityLimit(t *testing.T) {
	if got := NewLinearDecay(2.0, 1.0).StabilityLimit(); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
	if got := NewLinearDecay(0, 1.0).StabilityLimit(); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for A=0, got %g", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := Config{A: 1, X0: 1, TMin: 2, TMax: 1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for t_max < t_min")
	}

	nan := Config{A: math.NaN(), X0: 1, TMin: 0, TMax: 1}
	if err := nan.Validate(); err == nil {
		t.Error("expected error for NaN parameter")
	}
}

func TestResultSteps(t *testing.T) {
	r := &Result{Times: []float64{0, 0.5, 1.0}}
	if r.Steps() != 2 {
		t.Errorf("expected 2 steps, got %d", r.Steps())
	}
	if (&Result{}).Steps() != 0 {
		t.Error("empty result should report 0 steps")
	}
}
