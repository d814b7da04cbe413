package integrators

import "github.com/san-kum/eulerplot/internal/dynamo"

// Midpoint is the explicit midpoint method (second order Runge-Kutta).
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Name() string { return "midpoint" }

// Step probes half a step ahead with forward Euler from (x, y), then takes
// the full step with the derivative at that probe.
func (m *Midpoint) Step(f dynamo.Func, x, y, h float64) float64 {
	half := h / 2
	midX := x + half
	midY := y + half*f(x, y)
	return y + h*f(midX, midY)
}

// MidpointState is the running state of a midpoint trajectory. X advances
// by the full step length only; the probe abscissa never feeds back into it.
type MidpointState struct {
	X float64
	Y float64
}

func (s *MidpointState) Advance(f dynamo.Func, h float64) {
	s.Y = (&Midpoint{}).Step(f, s.X, s.Y, h)
	s.X += h
}
