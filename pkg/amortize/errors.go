package amortize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for non-finite or non-positive inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPayment is returned when the payment does not exceed the
	// first period's interest charge, so the balance never shrinks.
	ErrInvalidPayment = errors.New("payment must exceed first interest charge")
	// ErrDidNotConverge is returned when an iteration ceiling is reached.
	ErrDidNotConverge = errors.New("did not converge")
	// ErrNoSolution is returned when the solver can't find a principal
	// amortized in the requested number of periods.
	ErrNoSolution = errors.New("no solution")
)

// SolveError reports why a principal search failed, along with the state
// of the bracket when it was abandoned.
type SolveError struct {
	Lo, Hi     float64
	Principal  float64
	Iterations int
	Err        error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v after %d iterations (lo=%g, hi=%g, principal=%g): %v",
		ErrNoSolution, e.Iterations, e.Lo, e.Hi, e.Principal, e.Err)
}

func (e *SolveError) Unwrap() error { return e.Err }

func (e *SolveError) Is(target error) bool { return target == ErrNoSolution }
