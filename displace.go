package qstate

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Displace returns the truncated displacement operator
// D(alpha) = expm(alpha·a† - conj(alpha)·a) for truncation n, where a is
// the annihilation operator with a[k-1,k] = sqrt(k). The generator is
// anti-Hermitian, so the exponential stays unitary up to float error
// even in the truncated basis.
func Displace(n int, alpha complex128) (*mat.CDense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: truncation %d is not positive", ErrDimensionMismatch, n)
	}

	generator := mat.NewCDense(n, n, nil)
	for k := 0; k < n-1; k++ {
		root := complex(math.Sqrt(float64(k+1)), 0)
		generator.Set(k+1, k, alpha*root)
		generator.Set(k, k+1, -cmplx.Conj(alpha)*root)
	}

	return expm(generator), nil
}

const (
	expmTolerance = 1e-15
	expmMaxTerms  = 48
)

// expm computes e^A by scaling and squaring around a Taylor series:
// A is halved until its 1-norm drops below 0.5, the series is summed to
// convergence, and the result is squared back up.
func expm(a *mat.CDense) *mat.CDense {
	n, _ := a.Dims()

	squarings := 0
	if norm := cOneNorm(a); norm > 0.5 {
		squarings = int(math.Ceil(math.Log2(norm / 0.5)))
	}
	scaled := cScale(complex(1/math.Pow(2, float64(squarings)), 0), a)

	sum := cEye(n)
	term := cEye(n)
	for k := 1; k <= expmMaxTerms; k++ {
		term = cScale(complex(1/float64(k), 0), cMul(term, scaled))
		cAccumulate(sum, term)
		if cOneNorm(term) < expmTolerance {
			break
		}
	}

	for ; squarings > 0; squarings-- {
		sum = cMul(sum, sum)
	}
	return sum
}
