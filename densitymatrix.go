package qstate

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DensityMatrix is an N×N complex matrix representing a possibly mixed
// state. Builders hand back matrices that are Hermitian, positive
// semi-definite and trace 1; Renormalize restores the trace after
// operations that can drift it.
type DensityMatrix struct {
	m *mat.CDense
}

// NewDensityMatrix allocates a zero matrix for truncation n.
func NewDensityMatrix(n int) (*DensityMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: truncation %d is not positive", ErrDimensionMismatch, n)
	}
	return &DensityMatrix{m: mat.NewCDense(n, n, nil)}, nil
}

// Dim returns the basis truncation N.
func (d *DensityMatrix) Dim() int {
	n, _ := d.m.Dims()
	return n
}

// At returns the matrix element at row i, column j.
func (d *DensityMatrix) At(i, j int) complex128 {
	return d.m.At(i, j)
}

// Trace returns Σ ρ[n,n].
func (d *DensityMatrix) Trace() complex128 {
	var tr complex128
	for n, i := d.Dim(), 0; i < n; i++ {
		tr += d.m.At(i, i)
	}
	return tr
}

// Diagonal returns the real parts of the diagonal, which for a physical
// state are the photon-number populations.
func (d *DensityMatrix) Diagonal() []float64 {
	n := d.Dim()
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = real(d.m.At(i, i))
	}
	return diag
}

// Renormalize divides the matrix by its trace in place, forcing trace 1.
// Mixing and external generators accumulate floating-point drift, so
// this runs after every construction step rather than optionally.
func (d *DensityMatrix) Renormalize() error {
	tr := d.Trace()
	abs := cmplx.Abs(tr)
	if abs == 0 || math.IsNaN(abs) || math.IsInf(abs, 0) {
		return fmt.Errorf("%w: cannot renormalize matrix with trace %v", ErrDegenerateInput, tr)
	}
	inv := 1 / tr
	for n, i := d.Dim(), 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.m.Set(i, j, inv*d.m.At(i, j))
		}
	}
	return nil
}

// IsHermitian reports whether ρ equals its conjugate transpose within
// tol on every element.
func (d *DensityMatrix) IsHermitian(tol float64) bool {
	n := d.Dim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(d.m.At(i, j)-cmplx.Conj(d.m.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (d *DensityMatrix) Clone() *DensityMatrix {
	n := d.Dim()
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, d.m.At(i, j))
		}
	}
	return &DensityMatrix{m: out}
}
