package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for a run.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrEmptySeries indicates there is nothing to plot.
	ErrEmptySeries = errors.New("dynamo: series is empty")

	// ErrNonFinite indicates a series holds NaN or infinite values.
	ErrNonFinite = errors.New("dynamo: series has non-finite values")

	// ErrMisaligned indicates the result slices differ in length.
	ErrMisaligned = errors.New("dynamo: series columns differ in length")

	// ErrUnknownScheme indicates an integrator name that is not registered.
	ErrUnknownScheme = errors.New("dynamo: unknown integration scheme")

	// ErrWindowClosed indicates the display window could not be kept open.
	ErrWindowClosed = errors.New("dynamo: window is not open")
)

// ParamError wraps ErrParameterBounds with the offending value.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s %g: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// InputError is returned when a line of user input cannot be parsed.
type InputError struct {
	Field   string
	Input   string
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input for %s %q: %v", e.Field, e.Input, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}

// RenderError is returned when building or encoding the chart fails.
type RenderError struct {
	Stage   string
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// DisplayError is returned when the artifact cannot be reopened or the
// window fails.
type DisplayError struct {
	Stage   string
	Wrapped error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("display %s: %v", e.Stage, e.Wrapped)
}

func (e *DisplayError) Unwrap() error {
	return e.Wrapped
}
