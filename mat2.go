package affine

import "gonum.org/v1/gonum/spatial/r2"

// Mat2 is a 2x2 matrix, the linear part of 2D transformations.
// The zero value of Mat2 is the identity matrix.
type Mat2 struct {
	// Diagonal elements stored with one subtracted, see Mat4.
	d00, x01 float64
	x10, d11 float64
}

// NewMat2 returns a new Mat2 populated with values passed in row-major form.
// If a is nil then NewMat2 returns a Mat2 filled with zeros.
func NewMat2(a []float64) Mat2 {
	if a == nil {
		return Mat2{d00: -1, d11: -1}
	}
	if len(a) != 4 {
		panic("Mat2 is initialized with 4 values")
	}
	return mat2(a[0], a[1], a[2], a[3])
}

func mat2(x00, x01, x10, x11 float64) Mat2 {
	return Mat2{d00: x00 - 1, x01: x01, x10: x10, d11: x11 - 1}
}

// At returns the element at row i and column j.
func (m Mat2) At(i, j int) float64 {
	if uint(i) > 1 || uint(j) > 1 {
		panic("Mat2 index out of range")
	}
	a := m.Array()
	return a[i*2+j]
}

// MulVec returns the product m·v.
func (m Mat2) MulVec(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: (m.d00+1)*v.X + m.x01*v.Y,
		Y: m.x10*v.X + (m.d11+1)*v.Y,
	}
}

// MulVecTrans returns the product mᵀ·v.
func (m Mat2) MulVecTrans(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: (m.d00+1)*v.X + m.x10*v.Y,
		Y: m.x01*v.X + (m.d11+1)*v.Y,
	}
}

// Mul multiplies the matrices m and b and returns the result.
func (m Mat2) Mul(b Mat2) Mat2 {
	x00, x11 := m.d00+1, m.d11+1
	y00, y11 := b.d00+1, b.d11+1
	return mat2(
		x00*y00+m.x01*b.x10, x00*b.x01+m.x01*y11,
		m.x10*y00+x11*b.x10, m.x10*b.x01+x11*y11,
	)
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return (m.d00+1)*(m.d11+1) - m.x01*m.x10
}

// Inverse returns the inverse of m. If m is singular Inverse
// returns the zero matrix and false.
func (m Mat2) Inverse() (Mat2, bool) {
	det := m.Det()
	if a := m.Array(); singular(det, a[:], 2) {
		return NewMat2(nil), false
	}
	d := 1 / det
	return mat2((m.d11+1)*d, -m.x01*d, -m.x10*d, (m.d00+1)*d), true
}

// Transpose returns the transpose of m.
func (m Mat2) Transpose() Mat2 {
	return Mat2{d00: m.d00, x01: m.x10, x10: m.x01, d11: m.d11}
}

// Scale returns m with every element multiplied by k.
func (m Mat2) Scale(k float64) Mat2 {
	return mat2((m.d00+1)*k, m.x01*k, m.x10*k, (m.d11+1)*k)
}

// EqualWithin tests the equality of the matrices to within a tolerance.
func (m Mat2) EqualWithin(b Mat2, tol Tolerance) bool {
	x, y := m.Array(), b.Array()
	return tol.equalSlices(x[:], y[:])
}

// Array returns a copy of the matrix's data in row major storage format.
func (m Mat2) Array() [4]float64 {
	return [4]float64{m.d00 + 1, m.x01, m.x10, m.d11 + 1}
}
