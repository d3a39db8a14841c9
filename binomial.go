package qstate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/combin"
)

// DefaultBinomialOrder returns the largest correction order whose code
// still fits the truncation: floor(n/(s+1)) - 1.
func DefaultBinomialOrder(n, s int) int {
	return n/(s+1) - 1
}

// RandomBinomialOrder draws a correction order uniformly from
// [0, DefaultBinomialOrder]. A nil source falls back to the default
// order itself.
func RandomBinomialOrder(n, s int, rng *rand.Rand) int {
	def := DefaultBinomialOrder(n, s)
	if rng == nil || def <= 0 {
		return def
	}
	return rng.IntN(def + 1)
}

// Binomial builds a binomial-code ket. Term m carries amplitude
// (-1)^(mu·m)·sqrt(C(order+1, m))/sqrt(2^(order+1)) at Fock index
// (s+1)·m, and the sum runs m = 0..order-1 with order itself excluded.
// order < 0 selects DefaultBinomialOrder(n, s).
func Binomial(n, s, order, mu int) (Ket, error) {
	if s < 0 {
		return nil, fmt.Errorf("%w: binomial spacing parameter %d is negative", ErrDimensionMismatch, s)
	}
	if mu != 0 && mu != 1 {
		return nil, fmt.Errorf("%w: logical selector mu must be 0 or 1, got %d", ErrConfiguration, mu)
	}
	if order < 0 {
		order = DefaultBinomialOrder(n, s)
	}
	if highest := (s + 1) * (order - 1); highest >= n {
		return nil, fmt.Errorf("%w: binomial code reaches fock index %d, beyond basis 0..%d", ErrDimensionMismatch, highest, n-1)
	}

	ket, err := NewKet(n)
	if err != nil {
		return nil, err
	}

	scale := math.Sqrt(math.Pow(2, float64(order+1)))
	for m := 0; m < order; m++ {
		amp := math.Sqrt(float64(combin.Binomial(order+1, m))) / scale
		if mu == 1 && m%2 == 1 {
			amp = -amp
		}
		ket[(s+1)*m] = complex(amp, 0)
	}

	return ket.Normalize()
}
