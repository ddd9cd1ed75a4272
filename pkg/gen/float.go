package gen

import (
	"math"
	"math/rand"
)

// Float64 is a generator for float64 values.
type Float64 interface {
	Gen() float64
}

// StaticFloat64 generates a static value.
func StaticFloat64(v float64) Float64 {
	return Float64Func(func() float64 { return v })
}

// UniformFloat64 generates values from a uniform distribution over [from, to).
func UniformFloat64(r *rand.Rand, from, to float64) Float64 {
	return Float64Func(func() float64 {
		return from + r.Float64()*(to-from)
	})
}

// LogUniformFloat64 generates values whose logarithm is uniform over
// [log(from), log(to)), so each order of magnitude is equally likely.
// Both bounds must be positive.
func LogUniformFloat64(r *rand.Rand, from, to float64) Float64 {
	lfrom, lto := math.Log(from), math.Log(to)
	return Float64Func(func() float64 {
		return math.Exp(lfrom + r.Float64()*(lto-lfrom))
	})
}

// Float64Func generates float64 values by invoking a given function.
type Float64Func func() float64

// Gen generates a float64.
func (gen Float64Func) Gen() float64 { return gen() }
