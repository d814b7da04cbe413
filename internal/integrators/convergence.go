package integrators

import (
	"math"

	"github.com/pkg/errors"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// MaxLevels bounds the refinement depth; the last level runs
// StepCount<<(MaxLevels-1) steps.
const MaxLevels = 20

// CheckLevels reports a refinement depth outside [1, MaxLevels].
func CheckLevels(levels int) error {
	if levels < 1 || levels > MaxLevels {
		return errors.Wrapf(dynamo.ErrParameterBounds, "levels %d (want 1..%d)", levels, MaxLevels)
	}
	return nil
}

// ConvergenceRow is the final-point error of one scheme at one refinement
// level. Order is NaN on the coarsest level.
type ConvergenceRow struct {
	Scheme     string
	StepLength float64
	Steps      int
	Error      float64
	Order      float64
}

// Convergence halves the step length levels-1 times while doubling the
// step count, so every level ends at the same x, and reports the absolute
// error at that point along with the observed order log2(e(h)/e(h/2)).
func Convergence(p dynamo.Params, eq dynamo.Equation, schemes []string, levels int) ([]ConvergenceRow, error) {
	if err := CheckLevels(levels); err != nil {
		return nil, err
	}

	exact := eq.Solve(p.X0, p.Y0)
	rows := make([]ConvergenceRow, 0, len(schemes)*levels)

	for _, name := range schemes {
		st, err := Get(name)
		if err != nil {
			return nil, err
		}

		h := p.StepLength
		n := p.StepCount
		prev := math.NaN()

		for level := 0; level < levels; level++ {
			x, y := Trajectory(st, eq.Derive, p.X0, p.Y0, h, n)
			e := math.Abs(y - exact(x))

			rows = append(rows, ConvergenceRow{
				Scheme:     st.Name(),
				StepLength: h,
				Steps:      n,
				Error:      e,
				Order:      math.Log2(prev / e),
			})

			prev = e
			h /= 2
			n *= 2
		}
	}

	return rows, nil
}
