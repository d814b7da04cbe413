// Package dynamo provides the core types shared by the integrator and the
// presenter.
//
//   - [Func]: derivative y' = f(x, y)
//   - [Equation]: derivative plus its closed-form solution
//   - [Params]: initial condition, step length and step count
//   - [Series]: index-aligned x, Euler, midpoint and exact values
//
// # Example
//
//	eq := dynamo.Exponential(2)
//	series := integrators.Integrate(dynamo.Params{X0: 0, Y0: 1, StepLength: 0.1, StepCount: 10}, eq)
//
// # Errors
//
// Failures are reported through [InputError], [RenderError] and
// [DisplayError]. Each wraps its cause, so errors.Is and errors.As see
// through them.
package dynamo
