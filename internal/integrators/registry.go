package integrators

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// Stepper advances a scalar ODE by one fixed step.
type Stepper interface {
	Name() string
	Step(f dynamo.Func, x, y, h float64) float64
}

var steppers = map[string]func() Stepper{
	"euler":    func() Stepper { return NewEuler() },
	"midpoint": func() Stepper { return NewMidpoint() },
	"rk4":      func() Stepper { return NewRK4() },
}

func Get(name string) (Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, errors.Wrapf(dynamo.ErrUnknownScheme, "%q (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
