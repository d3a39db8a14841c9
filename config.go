package qstate

import "runtime"

// Config carries the sampler defaults.
type Config struct {
	Workers int
}

func NewConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}
