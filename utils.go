package affine

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	pi = math.Pi
	// singularRatio is the fraction of the product of a matrix's row
	// norms, the largest possible |det|, below which the matrix is
	// considered not invertible.
	singularRatio = 1e-12
	// epsilon is used for degenerate vector checks.
	epsilon = 1e-12
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp[T Field](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1]
func Mix[T Real](x, y, a T) T {
	return x + (a * (y - x))
}

// Sign returns the sign of x
func Sign[T Signed](x T) T {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// singular reports whether the n×n row major matrix a with determinant det
// is singular relative to the magnitude of its rows.
func singular(det float64, a []float64, n int) bool {
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return true
	}
	bound := 1.0
	for i := 0; i < n; i++ {
		bound *= floats.Norm(a[i*n:(i+1)*n], 2)
	}
	return math.Abs(det) <= singularRatio*bound
}
