package qstate

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// gonum's CDense carries no arithmetic of its own, so the handful of
// complex-matrix operations the package needs live here as plain
// element loops.

// cMul returns the matrix product a·b.
func cMul(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	_, bc := b.Dims()

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// cMulConjT returns a·b†, the product with the conjugate transpose of b.
func cMulConjT(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, _ := b.Dims()

	out := mat.NewCDense(ar, br, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < br; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * cmplx.Conj(b.At(j, k))
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// cScale returns f·a as a new matrix.
func cScale(f complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, f*a.At(i, j))
		}
	}
	return out
}

// cAccumulate adds src into dst element-wise.
func cAccumulate(dst, src *mat.CDense) {
	r, c := dst.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, dst.At(i, j)+src.At(i, j))
		}
	}
}

// cEye returns the n×n complex identity.
func cEye(n int) *mat.CDense {
	eye := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}
	return eye
}

// cOneNorm returns the maximum absolute column sum.
func cOneNorm(a *mat.CDense) float64 {
	r, c := a.Dims()
	var max float64
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += cmplx.Abs(a.At(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}
