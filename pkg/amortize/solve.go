package amortize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Solution is the outcome of a principal search.
type Solution struct {
	// Principal amortized by the payment in about the target number of periods.
	Principal float64
	// Periods is the simulated payoff time of Principal, within the
	// tolerance of the target.
	Periods float64
	// Iterations is the number of bisection steps taken.
	Iterations int
}

// SolveForPrincipal returns the principal that interestRate and payment
// retire in numPeriods periods. See Solve.
func SolveForPrincipal(interestRate, payment, numPeriods float64, opts ...Option) (float64, error) {
	sol, err := Solve(interestRate, payment, numPeriods, opts...)
	if err != nil {
		return 0, err
	}
	return sol.Principal, nil
}

// Solve bisects over candidate principals until NumberOfPayments lands
// within the tolerance of numPeriods. The tolerance applies to the period
// count, not to the principal.
//
// The search starts between payment/(1+interestRate), which a single
// payment retires, and the smaller of payment*numPeriods and
// 0.8*payment/interestRate. The latter keeps clear of payment/interestRate,
// where the payment only covers interest and payoff never happens. Targets
// whose principal lies outside that bracket have no solution.
//
// Failures are reported as a *SolveError matching ErrNoSolution and the
// underlying cause, ErrDidNotConverge when the bracket is exhausted.
func Solve(interestRate, payment, numPeriods float64, opts ...Option) (Solution, error) {
	for _, v := range []float64{interestRate, payment, numPeriods} {
		if !isFinite(v) || v <= 0 {
			return Solution{}, fmt.Errorf("rate=%g, payment=%g, periods=%g: %w", interestRate, payment, numPeriods, ErrInvalidArgument)
		}
	}
	cfg := newConfig(opts)
	log := kvFloat(kvFloat(kvFloat(cfg.log, "rate", interestRate), "payment", payment), "target", numPeriods)

	var (
		lo        = payment / (1 + interestRate)
		hi        = math.Min(payment*numPeriods, 0.8*payment/interestRate)
		principal = (lo + hi) / 2
	)
	if hi < lo {
		log.Event("empty bracket")
		return Solution{}, &SolveError{
			Lo: lo, Hi: hi, Principal: principal,
			Err: errors.New("empty search bracket"),
		}
	}
	for iter := 1; iter <= cfg.maxIterations; iter++ {
		n, err := numberOfPayments(principal, interestRate, payment, cfg.maxPeriods)
		if err != nil {
			log.KV("error", err.Error()).Event("simulation failed")
			return Solution{}, &SolveError{Lo: lo, Hi: hi, Principal: principal, Iterations: iter, Err: err}
		}
		if n < numPeriods {
			lo = principal
		} else {
			hi = principal
		}
		kvFloat(kvFloat(kvFloat(kvFloat(log.KV("iter", strconv.Itoa(iter)), "lo", lo), "hi", hi), "principal", principal), "periods", n).Event("bisect")

		if math.Abs(n-numPeriods) <= cfg.tolerance {
			kvFloat(log, "principal", principal).Event("converged")
			return Solution{Principal: principal, Periods: n, Iterations: iter}, nil
		}

		next := (lo + hi) / 2
		if next == lo || next == hi {
			// lo and hi are adjacent doubles, the target is out of reach
			log.Event("bracket exhausted")
			return Solution{}, &SolveError{
				Lo: lo, Hi: hi, Principal: principal, Iterations: iter,
				Err: fmt.Errorf("bracket collapsed %g periods off target: %w", n-numPeriods, ErrDidNotConverge),
			}
		}
		principal = next
	}
	log.Event("iteration ceiling reached")
	return Solution{}, &SolveError{
		Lo: lo, Hi: hi, Principal: principal, Iterations: cfg.maxIterations,
		Err: fmt.Errorf("tolerance of %g periods not met: %w", cfg.tolerance, ErrDidNotConverge),
	}
}
