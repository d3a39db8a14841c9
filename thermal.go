package qstate

import (
	"fmt"
	"math"
)

// Thermal returns the thermal state for mean photon number nth: a
// diagonal matrix with Bose-Einstein weights nth^k/(1+nth)^(k+1). The
// geometric series makes the untruncated trace exactly 1; truncation at
// n leaves a small deficit that is deliberately not corrected.
func Thermal(n int, nth float64) (*DensityMatrix, error) {
	if nth < 0 {
		return nil, fmt.Errorf("%w: mean thermal photon number %v is negative", ErrConfiguration, nth)
	}

	rho, err := NewDensityMatrix(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		occupation := math.Pow(nth, float64(k)) / math.Pow(1+nth, float64(k+1))
		rho.m.Set(k, k, complex(occupation, 0))
	}
	return rho, nil
}
