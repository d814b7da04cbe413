package dynamo

import (
	"fmt"
	"math"
)

// Func is the right-hand side of a scalar ODE y' = f(x, y).
type Func func(x, y float64) float64

// Solution evaluates a closed-form solution at x.
type Solution func(x float64) float64

// Equation bundles a derivative with the analytic solution used as ground
// truth. Solve binds the initial condition once and returns y(x).
type Equation struct {
	Label  string
	Derive Func
	Solve  func(x0, y0 float64) Solution
}

// Exponential returns y' = k*y. Its exact solution is C*e^(k*x) with the
// constant of integration C = y0 / e^(k*x0).
func Exponential(k float64) Equation {
	return Equation{
		Label: fmt.Sprintf("y' = %gy", k),
		Derive: func(_, y float64) float64 {
			return k * y
		},
		Solve: func(x0, y0 float64) Solution {
			c := y0 / math.Exp(k*x0)
			return func(x float64) float64 {
				return c * math.Exp(k*x)
			}
		},
	}
}

// Params holds the initial condition and step grid of a run.
type Params struct {
	X0         float64
	Y0         float64
	StepLength float64
	StepCount  int
}

// Validate reports parameters the CLI should refuse. Integrate itself
// accepts anything.
func (p Params) Validate() error {
	if p.StepLength == 0 {
		return &ParamError{Name: "step length", Value: p.StepLength, Wrapped: ErrParameterBounds}
	}
	if p.StepCount < 0 {
		return &ParamError{Name: "number of steps", Value: float64(p.StepCount), Wrapped: ErrParameterBounds}
	}
	return nil
}

// Series is the index-aligned output of a run. Entry i of every slice
// belongs to x = X0 + (i+1)*StepLength.
type Series struct {
	X        []float64
	Euler    []float64
	Midpoint []float64
	Exact    []float64
}

func NewSeries(capacity int) *Series {
	if capacity < 0 {
		capacity = 0
	}
	return &Series{
		X:        make([]float64, 0, capacity),
		Euler:    make([]float64, 0, capacity),
		Midpoint: make([]float64, 0, capacity),
		Exact:    make([]float64, 0, capacity),
	}
}

func (s *Series) Append(x, euler, midpoint, exact float64) {
	s.X = append(s.X, x)
	s.Euler = append(s.Euler, euler)
	s.Midpoint = append(s.Midpoint, midpoint)
	s.Exact = append(s.Exact, exact)
}

func (s *Series) Len() int {
	return len(s.X)
}

// Aligned reports whether all four slices have the same length.
func (s *Series) Aligned() bool {
	n := len(s.X)
	return len(s.Euler) == n && len(s.Midpoint) == n && len(s.Exact) == n
}

// IsValid reports whether every value in the series is finite.
func (s *Series) IsValid() bool {
	for _, col := range [][]float64{s.X, s.Euler, s.Midpoint, s.Exact} {
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Errors returns the absolute deviation of each approximation from the
// exact value, index by index.
func (s *Series) Errors() (euler, midpoint []float64) {
	euler = make([]float64, len(s.Exact))
	midpoint = make([]float64, len(s.Exact))
	for i, exact := range s.Exact {
		euler[i] = math.Abs(s.Euler[i] - exact)
		midpoint[i] = math.Abs(s.Midpoint[i] - exact)
	}
	return euler, midpoint
}
