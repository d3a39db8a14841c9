package qstate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// gkpLatticeRange fixes the lattice summation window. Changing it
// shifts every amplitude, so it stays pinned to keep states comparable
// with previously generated datasets; the latticeRange argument of GKP
// is accepted for signature compatibility only.
const gkpLatticeRange = 20

// GKP builds a finite-energy Gottesman-Kitaev-Preskill ket as a double
// sum over lattice integers n1, n2 in [-gkpLatticeRange,
// gkpLatticeRange). Each lattice point a = c·(2·n1 + mu + i·n2) with
// c = sqrt(π/2) contributes coherent_amplitude(n, a) weighted by
// exp(-delta²·|a|²)·exp(-i·c²·2·n1·n2); delta sets the energy envelope.
func GKP(n int, delta float64, mu int, latticeRange int) (Ket, error) {
	_ = latticeRange // fixed window, see gkpLatticeRange

	if mu != 0 && mu != 1 {
		return nil, fmt.Errorf("%w: logical selector mu must be 0 or 1, got %d", ErrConfiguration, mu)
	}

	sum, err := NewKet(n)
	if err != nil {
		return nil, err
	}

	c := math.Sqrt(math.Pi / 2)
	for n1 := -gkpLatticeRange; n1 < gkpLatticeRange; n1++ {
		for n2 := -gkpLatticeRange; n2 < gkpLatticeRange; n2++ {
			a := complex(c*float64(2*n1+mu), c*float64(n2))
			envelope := math.Exp(-delta * delta * (real(a)*real(a) + imag(a)*imag(a)))
			phase := cmplx.Exp(complex(0, -c*c*2*float64(n1)*float64(n2)))
			weight := complex(envelope, 0) * phase

			component, err := Coherent(n, a)
			if err != nil {
				return nil, err
			}
			for i := range sum {
				sum[i] += weight * component[i]
			}
		}
	}

	return sum.Normalize()
}
