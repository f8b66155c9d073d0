package affine

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mat3 is a 3x3 matrix. It is used both as the linear part of 3D
// transformations and as the homogeneous representation of 2D ones.
// The zero value of Mat3 is the identity matrix.
type Mat3 struct {
	// Diagonal elements stored with one subtracted, see Mat4.
	d00, x01, x02 float64
	x10, d11, x12 float64
	x20, x21, d22 float64
}

var zeroMat3 = Mat3{d00: -1, d11: -1, d22: -1}

// NewMat3 returns a new Mat3 and populates its elements
// with values passed in row-major form. If a is nil then NewMat3
// returns a Mat3 filled with zeros.
func NewMat3(a []float64) Mat3 {
	if a == nil {
		return zeroMat3
	}
	if len(a) != 9 {
		panic("Mat3 is initialized with 9 values")
	}
	return mat3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

func mat3(x00, x01, x02, x10, x11, x12, x20, x21, x22 float64) Mat3 {
	return Mat3{
		d00: x00 - 1, x01: x01, x02: x02,
		x10: x10, d11: x11 - 1, x12: x12,
		x20: x20, x21: x21, d22: x22 - 1,
	}
}

// mat3Rows returns the matrix with rows a, b and c.
func mat3Rows(a, b, c r3.Vec) Mat3 {
	return mat3(a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z)
}

// affineMat3 returns the 2D homogeneous matrix with linear part l
// and translation t.
func affineMat3(l Mat2, t r2.Vec) Mat3 {
	return Mat3{
		d00: l.d00, x01: l.x01, x02: t.X,
		x10: l.x10, d11: l.d11, x12: t.Y,
	}
}

// At returns the element at row i and column j.
func (m Mat3) At(i, j int) float64 {
	if uint(i) > 2 || uint(j) > 2 {
		panic("Mat3 index out of range")
	}
	a := m.Array()
	return a[i*3+j]
}

// Row returns the i'th row of m.
func (m Mat3) Row(i int) r3.Vec {
	a := m.Array()
	return r3.Vec{X: a[i*3], Y: a[i*3+1], Z: a[i*3+2]}
}

// Col returns the j'th column of m.
func (m Mat3) Col(j int) r3.Vec {
	a := m.Array()
	return r3.Vec{X: a[j], Y: a[3+j], Z: a[6+j]}
}

// Linear returns the upper left 2x2 block of m.
func (m Mat3) Linear() Mat2 {
	return Mat2{d00: m.d00, x01: m.x01, x10: m.x10, d11: m.d11}
}

// Translation returns the first two elements of the last column of m.
func (m Mat3) Translation() r2.Vec {
	return r2.Vec{X: m.x02, Y: m.x12}
}

// MulVec returns the product m·v.
func (m Mat3) MulVec(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (m.d00+1)*v.X + m.x01*v.Y + m.x02*v.Z,
		Y: m.x10*v.X + (m.d11+1)*v.Y + m.x12*v.Z,
		Z: m.x20*v.X + m.x21*v.Y + (m.d22+1)*v.Z,
	}
}

// MulVecTrans returns the product mᵀ·v.
func (m Mat3) MulVecTrans(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (m.d00+1)*v.X + m.x10*v.Y + m.x20*v.Z,
		Y: m.x01*v.X + (m.d11+1)*v.Y + m.x21*v.Z,
		Z: m.x02*v.X + m.x12*v.Y + (m.d22+1)*v.Z,
	}
}

// MulPos applies m to the 2D point v using homogeneous coordinates
// (w=1) and divides the result by the resulting w component.
func (m Mat3) MulPos(v r2.Vec) r2.Vec {
	w := 1 / (m.x20*v.X + m.x21*v.Y + m.d22 + 1)
	return r2.Vec{
		X: ((m.d00+1)*v.X + m.x01*v.Y + m.x02) * w,
		Y: (m.x10*v.X + (m.d11+1)*v.Y + m.x12) * w,
	}
}

// MulDir applies m to the 2D direction v using homogeneous coordinates
// (w=0) and drops the last component of the result.
func (m Mat3) MulDir(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: (m.d00+1)*v.X + m.x01*v.Y,
		Y: m.x10*v.X + (m.d11+1)*v.Y,
	}
}

// Mul multiplies the matrices m and b and returns the result.
func (m Mat3) Mul(b Mat3) Mat3 {
	if m == (Mat3{}) {
		return b
	}
	if b == (Mat3{}) {
		return m
	}
	x00, x11, x22 := m.d00+1, m.d11+1, m.d22+1
	y00, y11, y22 := b.d00+1, b.d11+1, b.d22+1
	var r Mat3
	r.d00 = x00*y00 + m.x01*b.x10 + m.x02*b.x20 - 1
	r.x10 = m.x10*y00 + x11*b.x10 + m.x12*b.x20
	r.x20 = m.x20*y00 + m.x21*b.x10 + x22*b.x20
	r.x01 = x00*b.x01 + m.x01*y11 + m.x02*b.x21
	r.d11 = m.x10*b.x01 + x11*y11 + m.x12*b.x21 - 1
	r.x21 = m.x20*b.x01 + m.x21*y11 + x22*b.x21
	r.x02 = x00*b.x02 + m.x01*b.x12 + m.x02*y22
	r.x12 = m.x10*b.x02 + x11*b.x12 + m.x12*y22
	r.d22 = m.x20*b.x02 + m.x21*b.x12 + x22*y22 - 1
	return r
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	x00, x11, x22 := m.d00+1, m.d11+1, m.d22+1
	return x00*(x11*x22-m.x12*m.x21) -
		m.x01*(m.x10*x22-m.x12*m.x20) +
		m.x02*(m.x10*m.x21-x11*m.x20)
}

// Inverse returns the inverse of m. If m is singular Inverse
// returns the zero matrix and false.
func (m Mat3) Inverse() (Mat3, bool) {
	if m == (Mat3{}) {
		return m, true
	}
	det := m.Det()
	if a := m.Array(); singular(det, a[:], 3) {
		return zeroMat3, false
	}
	d := 1 / det
	x00, x11, x22 := m.d00+1, m.d11+1, m.d22+1
	return mat3(
		(x11*x22-m.x12*m.x21)*d, (m.x21*m.x02-m.x01*x22)*d, (m.x01*m.x12-x11*m.x02)*d,
		(m.x12*m.x20-x22*m.x10)*d, (x22*x00-m.x20*m.x02)*d, (m.x02*m.x10-m.x12*x00)*d,
		(m.x10*m.x21-m.x20*x11)*d, (m.x20*m.x01-x00*m.x21)*d, (x00*x11-m.x01*m.x10)*d,
	), true
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		d00: m.d00, x01: m.x10, x02: m.x20,
		x10: m.x01, d11: m.d11, x12: m.x21,
		x20: m.x02, x21: m.x12, d22: m.d22,
	}
}

// Scale returns m with every element multiplied by k.
func (m Mat3) Scale(k float64) Mat3 {
	a := m.Array()
	for i := range a {
		a[i] *= k
	}
	return NewMat3(a[:])
}

// EqualWithin tests the equality of the matrices to within a tolerance.
func (m Mat3) EqualWithin(b Mat3, tol Tolerance) bool {
	x, y := m.Array(), b.Array()
	return tol.equalSlices(x[:], y[:])
}

// Array returns a copy of the matrix's data in row major storage format.
func (m Mat3) Array() [9]float64 {
	return [9]float64{
		m.d00 + 1, m.x01, m.x02,
		m.x10, m.d11 + 1, m.x12,
		m.x20, m.x21, m.d22 + 1,
	}
}

// ColMajor32 returns the matrix's data as float32 in column major storage format.
func (m Mat3) ColMajor32() [9]float32 {
	a := m.Transpose().Array()
	var c [9]float32
	for i, v := range a {
		c[i] = float32(v)
	}
	return c
}

// F32 returns the matrix as a row major float32 matrix.
func (m Mat3) F32() f32.Mat3 {
	a := m.Array()
	var c f32.Mat3
	for i, v := range a {
		c[i] = float32(v)
	}
	return c
}
