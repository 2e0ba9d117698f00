// Package ode provides the core primitives for first-order ODE integration
// and error analysis.
//
// The package defines the fundamental interfaces and types shared by the
// stepper, the error evaluators, and the sweep runner:
//
//   - [System]: interface for scalar ODE right-hand sides (dx/dt = f(x, t))
//   - [ExactSolution]: closed-form reference trajectory for error measurement
//   - [Model]: a system that also knows its exact solution
//   - [LinearDecay]: the dx/dt = -A*x model with reference x(t) = x0*exp(-A*t)
//   - [Config]: run parameters (A, x0, time range), passed by value
//   - [Result]: time grid, trajectory, and wall-clock duration of one run
//
// # Example
//
//	m := ode.NewLinearDecay(1.0, 1.0)
//	res, _ := integrate.NewEuler().Integrate(ctx, m, cfg, 0.1)
//	sum, _ := errstat.EvaluateResult(res, m)
//
// # Thread Safety
//
// All types in this package are immutable after construction and safe for
// concurrent use. Runs sharing a model never share mutable state.
package ode
