package integrators

import "github.com/san-kum/eulerplot/internal/dynamo"

// RK4 is the classical fourth order Runge-Kutta scheme. It is not part of
// the plotted comparison; the convergence report uses it as a reference.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f dynamo.Func, x, y, h float64) float64 {
	half := h * 0.5

	k1 := f(x, y)
	k2 := f(x+half, y+half*k1)
	k3 := f(x+half, y+half*k2)
	k4 := f(x+h, y+h*k3)

	return y + h/6.0*(k1+2*k2+2*k3+k4)
}
