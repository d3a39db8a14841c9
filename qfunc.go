package qstate

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// PopulationTensor holds displaced photon-number distributions over a
// phase-space grid, indexed [y-index, x-index, photon number]. Data is
// stored row-major in a single backing slice, so each grid cell owns a
// disjoint window of it.
type PopulationTensor struct {
	Rows, Cols, Dim int

	data []float64
}

func newPopulationTensor(rows, cols, dim int) *PopulationTensor {
	return &PopulationTensor{
		Rows: rows,
		Cols: cols,
		Dim:  dim,
		data: make([]float64, rows*cols*dim),
	}
}

// At returns the population vector of grid cell (i, j) as a view into
// the backing array.
func (t *PopulationTensor) At(i, j int) []float64 {
	offset := (i*t.Cols + j) * t.Dim
	return t.data[offset : offset+t.Dim]
}

// Sampler scans a density matrix over a phase-space grid, one displaced
// measurement per cell. Cells are independent, so rows are fanned out
// to a bounded worker set; every worker writes only the rows it owns,
// which keeps the scan race-free without locks on the output.
type Sampler struct {
	workers int
	metrics *Metrics
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithWorkers bounds the number of concurrent row scanners. One worker
// gives a fully sequential scan.
func WithWorkers(n int) SamplerOption {
	return func(s *Sampler) {
		s.workers = n
	}
}

func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		workers: NewConfig().Workers,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

// Metrics exposes the sampler's throughput counters.
func (s *Sampler) Metrics() *Metrics {
	return s.metrics
}

// GeneralizedQ samples the generalized Q-function of rho over the grid
// spanned by xvec and yvec. For every (i, j) the displacement is
// alpha = (xvec[j] + i·yvec[i])/sqrt(2) and the populations of
// Measure(alpha, rho) land at tensor[i, j, :]. Iteration order — outer
// over yvec, inner over xvec — is part of the contract; consumers index
// the tensor by it.
func (s *Sampler) GeneralizedQ(ctx context.Context, rho *DensityMatrix, xvec, yvec []float64) (*PopulationTensor, error) {
	if rho == nil {
		return nil, fmt.Errorf("%w: nil density matrix", ErrDimensionMismatch)
	}
	if len(xvec) == 0 || len(yvec) == 0 {
		return nil, fmt.Errorf("%w: empty phase-space axis (%d x %d)", ErrDimensionMismatch, len(xvec), len(yvec))
	}

	tensor := newPopulationTensor(len(yvec), len(xvec), rho.Dim())

	workers := s.workers
	if workers > len(yvec) {
		workers = len(yvec)
	}
	errnie.Info(
		"sampling %dx%d phase-space grid at truncation %d with %d workers",
		len(yvec), len(xvec), rho.Dim(), workers,
	)

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}
	failed := func() bool {
		errMu.Lock()
		defer errMu.Unlock()
		return firstErr != nil
	}

	rows := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				// Keep draining after a failure so the feeder never blocks.
				if failed() {
					continue
				}
				if err := s.scanRow(tensor, rho, xvec, yvec[i], i); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for i := range yvec {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		select {
		case <-ctx.Done():
			fail(ctx.Err())
			break feed
		case rows <- i:
		}
	}
	close(rows)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return tensor, nil
}

func (s *Sampler) scanRow(tensor *PopulationTensor, rho *DensityMatrix, xvec []float64, y float64, i int) error {
	for j, x := range xvec {
		startTime := time.Now()

		alpha := complex(x, y) / complex(math.Sqrt2, 0)
		populations, err := Measure(alpha, rho)
		if err != nil {
			return err
		}
		copy(tensor.At(i, j), populations)

		s.metrics.recordCell(startTime)
	}
	return nil
}

// GeneralizedQ runs a one-shot grid scan with a default sampler.
func GeneralizedQ(rho *DensityMatrix, xvec, yvec []float64, opts ...SamplerOption) (*PopulationTensor, error) {
	return NewSampler(opts...).GeneralizedQ(context.Background(), rho, xvec, yvec)
}
