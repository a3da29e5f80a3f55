package engine

import "errors"

// Domain errors for evaluation and stepping.
var (
	// ErrInvalidState indicates NaN or Inf reached a particle field.
	ErrInvalidState = errors.New("engine: invalid state (NaN or Inf detected)")

	// ErrUnknownGroup indicates an equation names a particle group that was
	// never registered.
	ErrUnknownGroup = errors.New("engine: unknown particle group")

	// ErrNotCompiled indicates Evaluate ran before Compile.
	ErrNotCompiled = errors.New("engine: evaluator not compiled")

	// ErrNoEquations indicates an evaluator with nothing to do.
	ErrNoEquations = errors.New("engine: no equations registered")
)

// SimulationError wraps an error with stepping context.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
