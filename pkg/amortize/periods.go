package amortize

import (
	"fmt"
	"math"
)

// NumberOfPayments simulates paying down principal, one period at a time,
// and returns how many periods it takes. The last period is usually only
// partially used, so the result is fractional: this keeps it continuous and
// non-decreasing in the principal, which the solver relies on.
//
// The payment must exceed the first period's interest, principal*interestRate,
// or ErrInvalidPayment is returned. Simulations running longer than the
// configured ceiling (see WithMaxPeriods) fail with ErrDidNotConverge.
func NumberOfPayments(principal, interestRate, payment float64, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	return numberOfPayments(principal, interestRate, payment, cfg.maxPeriods)
}

func numberOfPayments(principal, interestRate, payment float64, maxPeriods int) (float64, error) {
	if err := checkLoan(principal, interestRate, payment); err != nil {
		return 0, err
	}
	var (
		remaining = principal
		count     = 0
	)
	for remaining > 0 {
		if count >= maxPeriods {
			return 0, fmt.Errorf("balance of %g still outstanding after %d periods: %w", remaining, count, ErrDidNotConverge)
		}
		remaining += remaining*interestRate - payment
		count++
	}
	// remaining is in (-payment, 0]: the unused share of the last payment
	return float64(count) + remaining/payment, nil
}

func checkLoan(principal, interestRate, payment float64) error {
	switch {
	case !isFinite(principal) || principal <= 0:
		return fmt.Errorf("principal %g: %w", principal, ErrInvalidArgument)
	case !isFinite(interestRate) || interestRate <= 0:
		return fmt.Errorf("interest rate %g: %w", interestRate, ErrInvalidArgument)
	case !isFinite(payment):
		return fmt.Errorf("payment %g: %w", payment, ErrInvalidArgument)
	case payment <= principal*interestRate:
		return fmt.Errorf("payment %g, first interest charge %g: %w", payment, principal*interestRate, ErrInvalidPayment)
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
