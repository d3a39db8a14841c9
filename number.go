package qstate

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

// StateOption configures the randomized parts of a state builder.
// Randomness is always reachable through an injected source so tests
// can pin it down.
type StateOption func(*stateConfig)

type stateConfig struct {
	rng    *rand.Rand
	family int
}

// WithRand injects the random source used for any randomized choice the
// builder makes. Without it the builder draws from the global source.
func WithRand(rng *rand.Rand) StateOption {
	return func(cfg *stateConfig) {
		cfg.rng = rng
	}
}

// WithCodeFamily pins Number's default-table selection to one of the
// built-in code families instead of drawing one at random.
func WithCodeFamily(family int) StateOption {
	return func(cfg *stateConfig) {
		cfg.family = family
	}
}

func (cfg *stateConfig) intN(n int) int {
	if cfg.rng != nil {
		return cfg.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Number builds Σ probs[mu][k]·|k⟩: probs is a pair of amplitude
// tables, one per logical codeword, and mu selects which one is
// normalized into a ket. With a nil pair it falls back to one of the
// five built-in number-code families (selected at random, or via
// WithCodeFamily), which requires a truncation of at least
// minCodeDimension.
func Number(n int, probs [][]float64, mu int, opts ...StateOption) (Ket, error) {
	if mu != 0 && mu != 1 {
		return nil, fmt.Errorf("%w: logical selector mu must be 0 or 1, got %d", ErrConfiguration, mu)
	}

	cfg := &stateConfig{family: -1}
	for _, opt := range opts {
		opt(cfg)
	}

	var table []float64
	if probs == nil {
		if n < minCodeDimension {
			return nil, fmt.Errorf("%w: default number codes assume truncation >= %d, got %d", ErrConfiguration, minCodeDimension, n)
		}
		family := cfg.family
		if family < 0 {
			family = cfg.intN(len(numberCodes))
		}
		if family >= len(numberCodes) {
			return nil, fmt.Errorf("%w: number code family %d does not exist", ErrConfiguration, family)
		}
		errnie.Info("number builder using code family %d, mu %d", family, mu)
		table = numberCodes[family][mu][:]
	} else {
		if mu >= len(probs) {
			return nil, fmt.Errorf("%w: amplitude tables carry no codeword for mu %d", ErrConfiguration, mu)
		}
		table = probs[mu]
	}

	if len(table) > n {
		return nil, fmt.Errorf("%w: amplitude table length %d exceeds truncation %d", ErrDimensionMismatch, len(table), n)
	}

	ket, err := NewKet(n)
	if err != nil {
		return nil, err
	}
	for k, p := range table {
		ket[k] = complex(p, 0)
	}

	return ket.Normalize()
}
