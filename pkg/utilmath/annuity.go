// Package utilmath has closed-form annuity formulas. They serve as a
// reference for the numeric solver in package amortize and to convert
// yearly terms into per-period ones.
package utilmath

import "math"

// PeriodicRate converts a yearly nominal rate into the rate applied each
// of the paymentsPerYear periods.
func PeriodicRate(annualRateOfInterest float64, paymentsPerYear int) float64 {
	return annualRateOfInterest / float64(paymentsPerYear)
}

// Payment is the fixed payment that retires principal in periods payments
// at the given per-period rate.
//
//	A = P * r(1+r)^n / ((1+r)^n - 1)
func Payment(principal, rate, periods float64) float64 {
	g := math.Pow(1+rate, periods)
	return principal * rate * g / (g - 1)
}

// PresentValue is the principal that a fixed payment retires in periods
// payments at the given per-period rate.
//
//	P = A * (1 - (1+r)^-n) / r
func PresentValue(rate, payment, periods float64) float64 {
	return payment * -math.Expm1(-periods*math.Log1p(rate)) / rate
}

// PeriodsToPayoff is the continuous number of periods a fixed payment takes
// to retire principal. It is +Inf when the payment doesn't cover the first
// period's interest.
//
//	n = -ln(1 - P*r/A) / ln(1+r)
func PeriodsToPayoff(principal, rate, payment float64) float64 {
	if payment <= principal*rate {
		return math.Inf(1)
	}
	return -math.Log1p(-principal*rate/payment) / math.Log1p(rate)
}

// Balance is what remains owed on principal after paid of its periods
// payments have been made.
//
//	B = P * ((1+r)^n - (1+r)^m) / ((1+r)^n - 1)
func Balance(principal, rate, periods, paid float64) float64 {
	gn := math.Pow(1+rate, periods)
	gm := math.Pow(1+rate, paid)
	return principal * (gn - gm) / (gn - 1)
}

// FixedPeriodicPayment is Payment for a loan quoted with a yearly rate and
// a tenure in years.
func FixedPeriodicPayment(loanAmount, annualRateOfInterest float64, loanTenureInYears, paymentPerYear int) float64 {
	return Payment(
		loanAmount,
		PeriodicRate(annualRateOfInterest, paymentPerYear),
		float64(loanTenureInYears*paymentPerYear),
	)
}

// OutstandingLoanBalance is Balance for a loan quoted with a yearly rate
// and a tenure in years, afterYears into the loan.
func OutstandingLoanBalance(loanAmount, annualRateOfInterest float64, loanTenureInYears, paymentPerYear, afterYears int) float64 {
	return Balance(
		loanAmount,
		PeriodicRate(annualRateOfInterest, paymentPerYear),
		float64(loanTenureInYears*paymentPerYear),
		float64(afterYears*paymentPerYear),
	)
}
