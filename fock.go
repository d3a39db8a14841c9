package qstate

import "fmt"

// Fock returns the density matrix of the pure number state |k⟩⟨k|: a
// single 1 on the diagonal at index k.
func Fock(n, k int) (*DensityMatrix, error) {
	if k < 0 || k >= n {
		return nil, fmt.Errorf("%w: fock index %d outside basis 0..%d", ErrDimensionMismatch, k, n-1)
	}

	rho, err := NewDensityMatrix(n)
	if err != nil {
		return nil, err
	}
	rho.m.Set(k, k, 1)
	return rho, nil
}
