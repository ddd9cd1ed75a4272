package amortize

import (
	"fmt"
	"strconv"
)

// Period is one row of an amortization schedule.
type Period struct {
	Index    int
	Interest float64
	Payment  float64
	Repaid   float64
	Balance  float64

	// Fraction of the period used, 1 for all but the last one.
	Fraction float64
}

// Schedule plays out the same simulation as NumberOfPayments and returns a
// row per period. The last row pays only what is left, so its Balance is 0
// and its Fraction is what NumberOfPayments adds past the whole periods.
func Schedule(principal, interestRate, payment float64, opts ...Option) ([]Period, error) {
	if err := checkLoan(principal, interestRate, payment); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	var (
		periods   []Period
		remaining = principal
	)
	for remaining > 0 {
		if len(periods) >= cfg.maxPeriods {
			return nil, fmt.Errorf("balance of %g still outstanding after %d periods: %w", remaining, len(periods), ErrDidNotConverge)
		}
		interest := remaining * interestRate
		next := remaining + interest - payment
		row := Period{
			Index:    len(periods) + 1,
			Interest: interest,
			Payment:  payment,
			Fraction: 1,
		}
		if next <= 0 {
			row.Payment = payment + next
			row.Fraction = 1 + next/payment
			next = 0
		}
		row.Repaid = row.Payment - interest
		row.Balance = next
		periods = append(periods, row)

		kvFloat(kvFloat(kvFloat(cfg.log.KV("period", strconv.Itoa(row.Index)), "interest", row.Interest), "payment", row.Payment), "balance", row.Balance).Event("paid")
		remaining = next
	}
	return periods, nil
}
