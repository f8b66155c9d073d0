package affine

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mat4 is a 4x4 matrix. It is used as the homogeneous representation
// of 3D affine and projective transformations.
// The zero value of Mat4 is the identity matrix.
type Mat4 struct {
	// in order to make the zero value of Mat4 represent the identity
	// matrix we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1, d33 = x33-1
	// where x00, x11, x22, x33 are the matrix diagonal elements.
	// We can then check for identity in if blocks like so:
	//  if m == (Mat4{})
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
	x30, x31, x32, d33 float64
}

// zeroMat4 is the Mat4 that returns zeroMat4 when multiplied by any Mat4.
var zeroMat4 = Mat4{d00: -1, d11: -1, d22: -1, d33: -1}

// NewMat4 returns a new Mat4 and populates its elements
// with values passed in row-major form. If a is nil then NewMat4
// returns a Mat4 filled with zeros.
func NewMat4(a []float64) Mat4 {
	if a == nil {
		return zeroMat4
	}
	if len(a) != 16 {
		panic("Mat4 is initialized with 16 values")
	}
	return Mat4{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], d33: a[15] - 1,
	}
}

// affineMat4 returns the homogeneous matrix with linear part l
// and translation t.
func affineMat4(l Mat3, t r3.Vec) Mat4 {
	return Mat4{
		d00: l.d00, x01: l.x01, x02: l.x02, x03: t.X,
		x10: l.x10, d11: l.d11, x12: l.x12, x13: t.Y,
		x20: l.x20, x21: l.x21, d22: l.d22, x23: t.Z,
	}
}

// At returns the element at row i and column j.
func (m Mat4) At(i, j int) float64 {
	if uint(i) > 3 || uint(j) > 3 {
		panic("Mat4 index out of range")
	}
	a := m.Array()
	return a[i*4+j]
}

// Linear returns the upper left 3x3 block of m.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		d00: m.d00, x01: m.x01, x02: m.x02,
		x10: m.x10, d11: m.d11, x12: m.x12,
		x20: m.x20, x21: m.x21, d22: m.d22,
	}
}

// Translation returns the first three elements of the last column of m.
func (m Mat4) Translation() r3.Vec {
	return r3.Vec{X: m.x03, Y: m.x13, Z: m.x23}
}

// MulPos applies m to the point v using homogeneous coordinates
// (w=1) and divides the result by the resulting w component.
func (m Mat4) MulPos(v r3.Vec) r3.Vec {
	// https://github.com/mrdoob/three.js/blob/dev/src/math/Vector3.js#L262
	w := 1 / (m.x30*v.X + m.x31*v.Y + m.x32*v.Z + m.d33 + 1)
	return r3.Vec{
		X: ((m.d00+1)*v.X + m.x01*v.Y + m.x02*v.Z + m.x03) * w,
		Y: (m.x10*v.X + (m.d11+1)*v.Y + m.x12*v.Z + m.x13) * w,
		Z: (m.x20*v.X + m.x21*v.Y + (m.d22+1)*v.Z + m.x23) * w,
	}
}

// MulDir applies m to the direction v using homogeneous coordinates (w=0)
// and drops the last component of the result.
func (m Mat4) MulDir(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (m.d00+1)*v.X + m.x01*v.Y + m.x02*v.Z,
		Y: m.x10*v.X + (m.d11+1)*v.Y + m.x12*v.Z,
		Z: m.x20*v.X + m.x21*v.Y + (m.d22+1)*v.Z,
	}
}

// MulVec4 returns the product m·v of m with the 4-vector v.
func (m Mat4) MulVec4(v [4]float64) [4]float64 {
	return [4]float64{
		(m.d00+1)*v[0] + m.x01*v[1] + m.x02*v[2] + m.x03*v[3],
		m.x10*v[0] + (m.d11+1)*v[1] + m.x12*v[2] + m.x13*v[3],
		m.x20*v[0] + m.x21*v[1] + (m.d22+1)*v[2] + m.x23*v[3],
		m.x30*v[0] + m.x31*v[1] + m.x32*v[2] + (m.d33+1)*v[3],
	}
}

// Mul multiplies the matrices m and b and returns the result.
// Applied to a point the result is equivalent to applying b then m.
func (m Mat4) Mul(b Mat4) Mat4 {
	if m == (Mat4{}) {
		return b
	}
	if b == (Mat4{}) {
		return m
	}
	x00 := m.d00 + 1
	x11 := m.d11 + 1
	x22 := m.d22 + 1
	x33 := m.d33 + 1
	y00 := b.d00 + 1
	y11 := b.d11 + 1
	y22 := b.d22 + 1
	y33 := b.d33 + 1
	var r Mat4
	r.d00 = x00*y00 + m.x01*b.x10 + m.x02*b.x20 + m.x03*b.x30 - 1
	r.x10 = m.x10*y00 + x11*b.x10 + m.x12*b.x20 + m.x13*b.x30
	r.x20 = m.x20*y00 + m.x21*b.x10 + x22*b.x20 + m.x23*b.x30
	r.x30 = m.x30*y00 + m.x31*b.x10 + m.x32*b.x20 + x33*b.x30
	r.x01 = x00*b.x01 + m.x01*y11 + m.x02*b.x21 + m.x03*b.x31
	r.d11 = m.x10*b.x01 + x11*y11 + m.x12*b.x21 + m.x13*b.x31 - 1
	r.x21 = m.x20*b.x01 + m.x21*y11 + x22*b.x21 + m.x23*b.x31
	r.x31 = m.x30*b.x01 + m.x31*y11 + m.x32*b.x21 + x33*b.x31
	r.x02 = x00*b.x02 + m.x01*b.x12 + m.x02*y22 + m.x03*b.x32
	r.x12 = m.x10*b.x02 + x11*b.x12 + m.x12*y22 + m.x13*b.x32
	r.d22 = m.x20*b.x02 + m.x21*b.x12 + x22*y22 + m.x23*b.x32 - 1
	r.x32 = m.x30*b.x02 + m.x31*b.x12 + m.x32*y22 + x33*b.x32
	r.x03 = x00*b.x03 + m.x01*b.x13 + m.x02*b.x23 + m.x03*y33
	r.x13 = m.x10*b.x03 + x11*b.x13 + m.x12*b.x23 + m.x13*y33
	r.x23 = m.x20*b.x03 + m.x21*b.x13 + x22*b.x23 + m.x23*y33
	r.d33 = m.x30*b.x03 + m.x31*b.x13 + m.x32*b.x23 + x33*y33 - 1
	return r
}

// Det returns the determinant of m.
func (m Mat4) Det() float64 {
	x00 := m.d00 + 1
	x11 := m.d11 + 1
	x22 := m.d22 + 1
	x33 := m.d33 + 1
	return x00*x11*x22*x33 - x00*x11*m.x23*m.x32 +
		x00*m.x12*m.x23*m.x31 - x00*m.x12*m.x21*x33 +
		x00*m.x13*m.x21*m.x32 - x00*m.x13*x22*m.x31 -
		m.x01*m.x12*m.x23*m.x30 + m.x01*m.x12*m.x20*x33 -
		m.x01*m.x13*m.x20*m.x32 + m.x01*m.x13*x22*m.x30 -
		m.x01*m.x10*x22*x33 + m.x01*m.x10*m.x23*m.x32 +
		m.x02*m.x13*m.x20*m.x31 - m.x02*m.x13*m.x21*m.x30 +
		m.x02*m.x10*m.x21*x33 - m.x02*m.x10*m.x23*m.x31 +
		m.x02*x11*m.x23*m.x30 - m.x02*x11*m.x20*x33 -
		m.x03*m.x10*m.x21*m.x32 + m.x03*m.x10*x22*m.x31 -
		m.x03*x11*x22*m.x30 + m.x03*x11*m.x20*m.x32 -
		m.x03*m.x12*m.x20*m.x31 + m.x03*m.x12*m.x21*m.x30
}

// Inverse returns the inverse of m such that m.Inverse().Mul(m)
// is the identity. If m is singular Inverse returns the zero matrix and false.
func (m Mat4) Inverse() (Mat4, bool) {
	if m == (Mat4{}) {
		return m, true
	}
	det := m.Det()
	if a := m.Array(); singular(det, a[:], 4) {
		return zeroMat4, false
	}
	d := 1 / det
	x00 := m.d00 + 1
	x11 := m.d11 + 1
	x22 := m.d22 + 1
	x33 := m.d33 + 1
	var r Mat4
	r.d00 = (m.x12*m.x23*m.x31-m.x13*x22*m.x31+m.x13*m.x21*m.x32-x11*m.x23*m.x32-m.x12*m.x21*x33+x11*x22*x33)*d - 1
	r.x01 = (m.x03*x22*m.x31 - m.x02*m.x23*m.x31 - m.x03*m.x21*m.x32 + m.x01*m.x23*m.x32 + m.x02*m.x21*x33 - m.x01*x22*x33) * d
	r.x02 = (m.x02*m.x13*m.x31 - m.x03*m.x12*m.x31 + m.x03*x11*m.x32 - m.x01*m.x13*m.x32 - m.x02*x11*x33 + m.x01*m.x12*x33) * d
	r.x03 = (m.x03*m.x12*m.x21 - m.x02*m.x13*m.x21 - m.x03*x11*x22 + m.x01*m.x13*x22 + m.x02*x11*m.x23 - m.x01*m.x12*m.x23) * d
	r.x10 = (m.x13*x22*m.x30 - m.x12*m.x23*m.x30 - m.x13*m.x20*m.x32 + m.x10*m.x23*m.x32 + m.x12*m.x20*x33 - m.x10*x22*x33) * d
	r.d11 = (m.x02*m.x23*m.x30-m.x03*x22*m.x30+m.x03*m.x20*m.x32-x00*m.x23*m.x32-m.x02*m.x20*x33+x00*x22*x33)*d - 1
	r.x12 = (m.x03*m.x12*m.x30 - m.x02*m.x13*m.x30 - m.x03*m.x10*m.x32 + x00*m.x13*m.x32 + m.x02*m.x10*x33 - x00*m.x12*x33) * d
	r.x13 = (m.x02*m.x13*m.x20 - m.x03*m.x12*m.x20 + m.x03*m.x10*x22 - x00*m.x13*x22 - m.x02*m.x10*m.x23 + x00*m.x12*m.x23) * d
	r.x20 = (x11*m.x23*m.x30 - m.x13*m.x21*m.x30 + m.x13*m.x20*m.x31 - m.x10*m.x23*m.x31 - x11*m.x20*x33 + m.x10*m.x21*x33) * d
	r.x21 = (m.x03*m.x21*m.x30 - m.x01*m.x23*m.x30 - m.x03*m.x20*m.x31 + x00*m.x23*m.x31 + m.x01*m.x20*x33 - x00*m.x21*x33) * d
	r.d22 = (m.x01*m.x13*m.x30-m.x03*x11*m.x30+m.x03*m.x10*m.x31-x00*m.x13*m.x31-m.x01*m.x10*x33+x00*x11*x33)*d - 1
	r.x23 = (m.x03*x11*m.x20 - m.x01*m.x13*m.x20 - m.x03*m.x10*m.x21 + x00*m.x13*m.x21 + m.x01*m.x10*m.x23 - x00*x11*m.x23) * d
	r.x30 = (m.x12*m.x21*m.x30 - x11*x22*m.x30 - m.x12*m.x20*m.x31 + m.x10*x22*m.x31 + x11*m.x20*m.x32 - m.x10*m.x21*m.x32) * d
	r.x31 = (m.x01*x22*m.x30 - m.x02*m.x21*m.x30 + m.x02*m.x20*m.x31 - x00*x22*m.x31 - m.x01*m.x20*m.x32 + x00*m.x21*m.x32) * d
	r.x32 = (m.x02*x11*m.x30 - m.x01*m.x12*m.x30 - m.x02*m.x10*m.x31 + x00*m.x12*m.x31 + m.x01*m.x10*m.x32 - x00*x11*m.x32) * d
	r.d33 = (m.x01*m.x12*m.x20-m.x02*x11*m.x20+m.x02*m.x10*m.x21-x00*m.x12*m.x21-m.x01*m.x10*x22+x00*x11*x22)*d - 1
	return r, true
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		d00: m.d00, x01: m.x10, x02: m.x20, x03: m.x30,
		x10: m.x01, d11: m.d11, x12: m.x21, x13: m.x31,
		x20: m.x02, x21: m.x12, d22: m.d22, x23: m.x32,
		x30: m.x03, x31: m.x13, x32: m.x23, d33: m.d33,
	}
}

// Scale returns m with every element multiplied by k.
func (m Mat4) Scale(k float64) Mat4 {
	a := m.Array()
	for i := range a {
		a[i] *= k
	}
	return NewMat4(a[:])
}

// EqualWithin tests the equality of the matrices to within a tolerance.
func (m Mat4) EqualWithin(b Mat4, tol Tolerance) bool {
	x, y := m.Array(), b.Array()
	return tol.equalSlices(x[:], y[:])
}

// Array returns a copy of the matrix's data in row major storage format.
func (m Mat4) Array() [16]float64 {
	return [16]float64{
		m.d00 + 1, m.x01, m.x02, m.x03,
		m.x10, m.d11 + 1, m.x12, m.x13,
		m.x20, m.x21, m.d22 + 1, m.x23,
		m.x30, m.x31, m.x32, m.d33 + 1,
	}
}

// ColMajor32 returns the matrix's data as float32 in column major
// storage format, the layout expected by OpenGL and Vulkan uniforms.
func (m Mat4) ColMajor32() [16]float32 {
	a := m.Transpose().Array()
	var c [16]float32
	for i, v := range a {
		c[i] = float32(v)
	}
	return c
}

// F32 returns the matrix as a row major float32 matrix.
func (m Mat4) F32() f32.Mat4 {
	a := m.Array()
	var c f32.Mat4
	for i, v := range a {
		c[i] = float32(v)
	}
	return c
}
