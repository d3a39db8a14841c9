package qstate

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// NoiseOption configures the random source behind the noise generator.
type NoiseOption func(*noiseConfig)

type noiseConfig struct {
	rng *rand.Rand
}

// WithNoiseRand injects the random source used by RandDM and
// AddStateNoise; the global source is used when absent.
func WithNoiseRand(rng *rand.Rand) NoiseOption {
	return func(cfg *noiseConfig) {
		cfg.rng = rng
	}
}

func (cfg *noiseConfig) float64() float64 {
	if cfg.rng != nil {
		return cfg.rng.Float64()
	}
	return rand.Float64()
}

func (cfg *noiseConfig) normFloat64() float64 {
	if cfg.rng != nil {
		return cfg.rng.NormFloat64()
	}
	return rand.NormFloat64()
}

func (cfg *noiseConfig) intN(n int) int {
	if cfg.rng != nil {
		return cfg.rng.IntN(n)
	}
	return rand.IntN(n)
}

// RandDM generates a random density matrix from a masked Ginibre
// ensemble: a complex Gaussian matrix X whose entries are populated
// with probability density, folded into X·X†/tr(X·X†). The product form
// guarantees a Hermitian, positive semi-definite, trace-1 result.
func RandDM(n int, density float64, opts ...NoiseOption) (*DensityMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: truncation %d is not positive", ErrDimensionMismatch, n)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: density %v outside [0,1]", ErrConfiguration, density)
	}

	cfg := &noiseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ginibre := mat.NewCDense(n, n, nil)
	populated := false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cfg.float64() < density {
				ginibre.Set(i, j, complex(cfg.normFloat64(), cfg.normFloat64()))
				populated = true
			}
		}
	}
	// An all-zero draw has no trace to normalize by; force one entry.
	if !populated {
		k := cfg.intN(n)
		ginibre.Set(k, k, complex(cfg.normFloat64(), cfg.normFloat64()))
	}

	rho := &DensityMatrix{m: cMulConjT(ginibre, ginibre)}
	if err := rho.Renormalize(); err != nil {
		return nil, err
	}
	return rho, nil
}

// AddStateNoise convexly mixes rho with a random density matrix:
// (1-sigma)·rho + sigma·R, with R drawn by RandDM at the given
// sparsity. The result is renormalized unconditionally, so sigma = 0
// still returns a fresh matrix with its trace forced back to exactly 1.
func AddStateNoise(rho *DensityMatrix, sigma, sparsity float64, opts ...NoiseOption) (*DensityMatrix, error) {
	if rho == nil {
		return nil, fmt.Errorf("%w: nil density matrix", ErrDimensionMismatch)
	}
	if sigma < 0 || sigma > 1 {
		return nil, fmt.Errorf("%w: mixing coefficient %v outside [0,1]", ErrConfiguration, sigma)
	}

	noise, err := RandDM(rho.Dim(), sparsity, opts...)
	if err != nil {
		return nil, err
	}

	target := cScale(complex(1-sigma, 0), rho.m)
	cAccumulate(target, cScale(complex(sigma, 0), noise.m))

	mixed := &DensityMatrix{m: target}
	if err := mixed.Renormalize(); err != nil {
		return nil, err
	}
	return mixed, nil
}
