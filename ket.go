/*
Package qstate generates canonical bosonic states in a truncated Fock
basis and simulates the displaced photon-number measurements used to
sample a generalized Q-function over a phase-space grid.

Every amplitude vector and density matrix lives in the basis |0⟩..|N-1⟩
for a caller-chosen truncation N. Builders return immutable value
objects; nothing in the package holds shared mutable state.
*/
package qstate

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Ket is a pure-state amplitude vector: entry n is the amplitude of the
// photon-number state |n⟩.
type Ket []complex128

// NewKet allocates a zero amplitude vector for truncation n.
func NewKet(n int) (Ket, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: truncation %d is not positive", ErrDimensionMismatch, n)
	}
	return make(Ket, n), nil
}

// Norm returns sqrt(Σ|c_n|²).
func (k Ket) Norm() float64 {
	var sum float64
	for _, c := range k {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector to unit norm in place and returns it.
// A zero-norm accumulator means the superposition cancelled out, which
// is a caller error, not a representable state.
func (k Ket) Normalize() (Ket, error) {
	norm := k.Norm()
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: cannot normalize state with norm %v", ErrDegenerateInput, norm)
	}
	inv := complex(1/norm, 0)
	for i := range k {
		k[i] *= inv
	}
	return k, nil
}

// Overlap returns the inner product ⟨k|other⟩.
func (k Ket) Overlap(other Ket) (complex128, error) {
	if len(k) != len(other) {
		return 0, fmt.Errorf("%w: overlap between dimensions %d and %d", ErrDimensionMismatch, len(k), len(other))
	}
	var sum complex128
	for i := range k {
		sum += cmplx.Conj(k[i]) * other[i]
	}
	return sum, nil
}

// DM returns the density matrix |ψ⟩⟨ψ| of the pure state.
func (k Ket) DM() *DensityMatrix {
	n := len(k)
	rho := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rho.Set(i, j, k[i]*cmplx.Conj(k[j]))
		}
	}
	return &DensityMatrix{m: rho}
}
