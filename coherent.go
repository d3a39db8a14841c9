package qstate

import "math"

// Coherent returns the truncated amplitude vector of the coherent state
// |alpha⟩. The amplitude at Fock index k is proportional to
// alpha^k/sqrt(k!), built by the recurrence c_k = c_{k-1}·alpha/√k and
// normalized over the truncated sum. Normalizing the whole vector
// instead of applying the analytic exp(-|alpha|²/2) prefactor keeps the
// result a valid truncated pure state for any alpha; large |alpha| with
// a small truncation only degrades the approximation quality.
func Coherent(n int, alpha complex128) (Ket, error) {
	ket, err := NewKet(n)
	if err != nil {
		return nil, err
	}

	ket[0] = 1
	for k := 1; k < n; k++ {
		ket[k] = ket[k-1] * alpha / complex(math.Sqrt(float64(k)), 0)
	}

	return ket.Normalize()
}
