package integrators

import "github.com/san-kum/eulerplot/internal/dynamo"

// Integrate runs Euler and midpoint side by side from (X0, Y0) for
// StepCount steps of StepLength and records the exact solution at every
// post-step x. A StepCount of zero or less yields empty sequences.
//
// No validation is done: non-finite inputs propagate as NaN or Inf.
func Integrate(p dynamo.Params, eq dynamo.Equation) *dynamo.Series {
	series := dynamo.NewSeries(p.StepCount)
	exact := eq.Solve(p.X0, p.Y0)

	euler := EulerState{X: p.X0, Y: p.Y0}
	mid := MidpointState{X: p.X0, Y: p.Y0}

	for i := 1; i <= p.StepCount; i++ {
		euler.Advance(eq.Derive, p.StepLength)
		mid.Advance(eq.Derive, p.StepLength)

		x := euler.X
		series.Append(x, euler.Y, mid.Y, exact(x))
	}

	return series
}

// Trajectory integrates a single scheme and returns the final (x, y).
func Trajectory(st Stepper, f dynamo.Func, x0, y0, h float64, n int) (float64, float64) {
	x, y := x0, y0
	for i := 0; i < n; i++ {
		y = st.Step(f, x, y, h)
		x += h
	}
	return x, y
}
