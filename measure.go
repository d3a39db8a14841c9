package qstate

import "fmt"

// Measure simulates a displaced photon-number measurement: it conjugates
// rho with the displacement operator for -alpha and returns the real
// part of the resulting diagonal, the population of each Fock level.
// Zero displacement therefore returns exactly the diagonal of rho.
func Measure(alpha complex128, rho *DensityMatrix) ([]float64, error) {
	if rho == nil {
		return nil, fmt.Errorf("%w: nil density matrix", ErrDimensionMismatch)
	}

	n := rho.Dim()
	displacer, err := Displace(n, -alpha)
	if err != nil {
		return nil, err
	}

	displaced := cMulConjT(cMul(displacer, rho.m), displacer)

	populations := make([]float64, n)
	for k := 0; k < n; k++ {
		populations[k] = real(displaced.At(k, k))
	}
	return populations, nil
}
