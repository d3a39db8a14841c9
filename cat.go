package qstate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Cat builds a rotationally symmetric superposition of 2(S+1) coherent
// components. Component k sits at phase exp(iπk/(S+1)), contributing a
// term at both +displacement and -displacement; the terms at k ≥ S pick
// up a (-1)^mu sign, and alpha itself is rotated by -(i)^mu, which
// together select the logical 0/1 codeword.
//
// s = 0, mu = 0 degenerates to the plain two-component cat
// (|alpha⟩ + |-alpha⟩, normalized). alpha = 0 can cancel the whole
// superposition for some s/mu combinations; that surfaces as
// ErrDegenerateInput from the final normalization rather than being
// special-cased here.
func Cat(n int, alpha complex128, s, mu int) (Ket, error) {
	if s < 0 {
		return nil, fmt.Errorf("%w: cat superposition order %d is negative", ErrDimensionMismatch, s)
	}
	if mu != 0 && mu != 1 {
		return nil, fmt.Errorf("%w: logical selector mu must be 0 or 1, got %d", ErrConfiguration, mu)
	}

	sum, err := NewKet(n)
	if err != nil {
		return nil, err
	}

	rotated := alpha * logicalRotation(mu)
	for k := 0; k <= s; k++ {
		sign := complex128(1)
		if k >= s && mu == 1 {
			sign = -1
		}

		prefactor := cmplx.Exp(complex(0, math.Pi*float64(k)/float64(s+1)))
		for _, displacement := range [2]complex128{prefactor * rotated, -prefactor * rotated} {
			component, err := Coherent(n, displacement)
			if err != nil {
				return nil, err
			}
			for i := range sum {
				sum[i] += sign * component[i]
			}
		}
	}

	return sum.Normalize()
}

// logicalRotation returns -(i)^mu, the extra rotation applied to alpha
// that distinguishes the two codewords.
func logicalRotation(mu int) complex128 {
	if mu == 1 {
		return complex(0, -1)
	}
	return -1
}
