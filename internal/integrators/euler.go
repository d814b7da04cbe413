package integrators

import "github.com/san-kum/eulerplot/internal/dynamo"

// Euler is the explicit (forward) Euler scheme.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

// Step advances y by h using the derivative at the start of the interval.
func (e *Euler) Step(f dynamo.Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// EulerState is the running state of an Euler trajectory.
type EulerState struct {
	X float64
	Y float64
}

// Advance performs one step. Y is updated with the pre-step X.
func (s *EulerState) Advance(f dynamo.Func, h float64) {
	s.Y = (&Euler{}).Step(f, s.X, s.Y, h)
	s.X += h
}
