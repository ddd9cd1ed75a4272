package gen

import (
	"math"
	"math/rand"
)

// Loan holds the terms of a fixed-rate, fixed-payment loan.
type Loan struct {
	Rate    float64
	Payment float64
	Periods float64
}

// Loans generates loan terms.
type Loans interface {
	Gen() Loan
}

// LoanFunc generates Loan values by invoking a given function.
type LoanFunc func() Loan

// Gen generates a Loan.
func (gen LoanFunc) Gen() Loan { return gen() }

// maxPayoffGrowth bounds (1+rate)^periods. Past 5, the principal of the
// loan exceeds 0.8*payment/rate and can't be solved for.
const maxPayoffGrowth = 4.5

// SolvableLoans generates whole-period loan terms whose principal lies
// within the bracket searched by amortize.Solve. Rates come from the rate
// generator, payments from the payment generator, and the number of
// periods is uniform between 1 and the largest count the rate allows,
// capped at maxPeriods.
func SolvableLoans(r *rand.Rand, rate, payment Float64, maxPeriods int) Loans {
	return LoanFunc(func() Loan {
		l := Loan{Rate: rate.Gen(), Payment: payment.Gen()}
		limit := int(math.Log(maxPayoffGrowth) / math.Log1p(l.Rate))
		if limit > maxPeriods {
			limit = maxPeriods
		}
		if limit < 1 {
			limit = 1
		}
		l.Periods = float64(1 + r.Intn(limit))
		return l
	})
}
