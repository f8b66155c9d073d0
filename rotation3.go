package affine

import (
	"fmt"
	"math"

	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation3 is a rotation about the origin in 3D space stored as an
// orthogonal 3x3 matrix with determinant +1.
// The zero value of Rotation3 is the identity rotation.
type Rotation3 struct {
	m Mat3
}

// NewRotation3 returns the rotation by angle radians about axis,
// counter-clockwise when looking down the axis towards the origin.
// The axis is normalized. A zero axis yields a matrix of NaNs.
func NewRotation3(axis r3.Vec, angle float64) Rotation3 {
	if angle == 0 {
		return Rotation3{}
	}
	// Rodrigues' rotation formula:
	//  R = cos(θ)·I + sin(θ)·[k]ₓ + (1-cos(θ))·k·kᵀ
	k := r3.Unit(axis)
	s, c := math.Sincos(angle)
	t := 1 - c
	return Rotation3{m: mat3(
		c+t*k.X*k.X, t*k.X*k.Y-s*k.Z, t*k.X*k.Z+s*k.Y,
		t*k.X*k.Y+s*k.Z, c+t*k.Y*k.Y, t*k.Y*k.Z-s*k.X,
		t*k.X*k.Z-s*k.Y, t*k.Y*k.Z+s*k.X, c+t*k.Z*k.Z,
	)}
}

// Rotation3Between returns the rotation that takes the direction of a
// onto the direction of b along the shortest arc. If either vector is zero
// the identity is returned.
func Rotation3Between(a, b r3.Vec) Rotation3 {
	// is either vector == 0?
	if d3.EqualWithin(a, r3.Vec{}, epsilon) || d3.EqualWithin(b, r3.Vec{}, epsilon) {
		return Rotation3{}
	}
	a = r3.Unit(a)
	b = r3.Unit(b)
	if d3.EqualWithin(a, b, epsilon) {
		return Rotation3{}
	}
	// are the vectors opposite (180 degrees apart)?
	if d3.EqualWithin(r3.Scale(-1, a), b, epsilon) {
		// Any axis perpendicular to a works. Pick the one least aligned with a.
		return NewRotation3(r3.Cross(a, d3.LeastAligned(a)), pi)
	}
	// See:	https://math.stackexchange.com/questions/180418/calculate-rotation-matrix-to-align-vector-a-to-vector-b-in-3d
	v := r3.Cross(a, b)
	vx := r3.Skew(v)

	k := 1 / (1 + r3.Dot(a, b))
	vx2 := r3.NewMat(nil)
	vx2.Mul(vx, vx)
	vx2.Scale(k, vx2)

	// Calculate sum of matrices.
	vx.Add(vx, r3.Eye())
	vx.Add(vx, vx2)
	return Rotation3{m: mat3(
		vx.At(0, 0), vx.At(0, 1), vx.At(0, 2),
		vx.At(1, 0), vx.At(1, 1), vx.At(1, 2),
		vx.At(2, 0), vx.At(2, 1), vx.At(2, 2),
	)}
}

// Rotation3FromQuat returns the rotation described by the quaternion q.
// q is normalized before conversion.
func Rotation3FromQuat(q r3.Rotation) Rotation3 {
	n := quat.Number(q)
	if abs := quat.Abs(n); abs != 1 {
		n = quat.Scale(1/abs, n)
	}
	rm := r3.Rotation(n).Mat()
	return Rotation3{m: mat3(
		rm.At(0, 0), rm.At(0, 1), rm.At(0, 2),
		rm.At(1, 0), rm.At(1, 1), rm.At(1, 2),
		rm.At(2, 0), rm.At(2, 1), rm.At(2, 2),
	)}
}

// NearestRotation3 returns the rotation closest to m in the Frobenius norm.
// It is used to re-orthonormalize rotation matrices that have accumulated
// floating point drift. ok is false if the decomposition failed.
func NearestRotation3(m Mat3) (r Rotation3, ok bool) {
	a := m.Array()
	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(3, 3, a[:]), mat.SVDFull) {
		return Rotation3{}, false
	}
	var u, v, q mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	q.Mul(&u, v.T())
	if mat.Det(&q) < 0 {
		// Flip the singular vector of the smallest singular value
		// so the result is a proper rotation and not a reflection.
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		q.Mul(&u, v.T())
	}
	return Rotation3{m: mat3(
		q.At(0, 0), q.At(0, 1), q.At(0, 2),
		q.At(1, 0), q.At(1, 1), q.At(1, 2),
		q.At(2, 0), q.At(2, 1), q.At(2, 2),
	)}, true
}

// Rotation3LookToLH returns the left-handed view rotation that maps
// direction onto +Z with up in the YZ half-plane of +Y.
// direction parallel to up yields a matrix of NaNs.
func Rotation3LookToLH(direction, up r3.Vec) Rotation3 {
	z := r3.Unit(direction)
	x := r3.Unit(r3.Cross(up, z))
	y := r3.Cross(z, x)
	return Rotation3{m: mat3Rows(x, y, z)}
}

// Rotation3LookToRH returns the right-handed view rotation that maps
// direction onto -Z with up in the YZ half-plane of +Y.
// direction parallel to up yields a matrix of NaNs.
func Rotation3LookToRH(direction, up r3.Vec) Rotation3 {
	z := r3.Unit(r3.Scale(-1, direction))
	x := r3.Unit(r3.Cross(up, z))
	y := r3.Cross(z, x)
	return Rotation3{m: mat3Rows(x, y, z)}
}

// Quat returns the unit quaternion describing the rotation.
func (r Rotation3) Quat() r3.Rotation {
	m := r.m.Array()
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]
	var q quat.Number
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{Real: s / 4, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: s / 4, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4}
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return r3.Rotation(q)
}

// AxisAngle returns the unit rotation axis and the rotation angle in
// radians in the range [0, pi]. The identity returns the Z axis and zero angle.
func (r Rotation3) AxisAngle() (axis r3.Vec, angle float64) {
	q := r.Quat()
	v := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := r3.Norm(v)
	if n < epsilon {
		return r3.Vec{Z: 1}, 0
	}
	return r3.Scale(1/n, v), 2 * math.Atan2(n, q.Real)
}

// Matrix returns the rotation matrix.
func (r Rotation3) Matrix() Mat3 { return r.m }

// RotateVector rotates v.
func (r Rotation3) RotateVector(v r3.Vec) r3.Vec { return r.m.MulVec(v) }

// RotatePoint rotates p about the origin.
func (r Rotation3) RotatePoint(p r3.Vec) r3.Vec { return r.m.MulVec(p) }

// InverseRotateVector applies the inverse rotation to v.
func (r Rotation3) InverseRotateVector(v r3.Vec) r3.Vec { return r.m.MulVecTrans(v) }

// Inverse returns the inverse rotation. Since the rotation matrix is
// orthogonal this is its transpose.
func (r Rotation3) Inverse() Rotation3 {
	return Rotation3{m: r.m.Transpose()}
}

// Mul returns the composition of r and b. b is applied first.
func (r Rotation3) Mul(b Rotation3) Rotation3 {
	return Rotation3{m: r.m.Mul(b.m)}
}

// TransformPoint rotates p about the origin.
func (r Rotation3) TransformPoint(p r3.Vec) r3.Vec { return r.RotatePoint(p) }

// TransformVector rotates v.
func (r Rotation3) TransformVector(v r3.Vec) r3.Vec { return r.RotateVector(v) }

// ToTransform returns the rotation as a generic 3D transform.
func (r Rotation3) ToTransform() Transform3 {
	return Transform3{m: affineMat4(r.m, r3.Vec{})}
}

// EqualWithin tests the equality of the rotations to within a tolerance.
func (r Rotation3) EqualWithin(b Rotation3, tol Tolerance) bool {
	return r.m.EqualWithin(b.m, tol)
}

func (r Rotation3) String() string {
	axis, angle := r.AxisAngle()
	return fmt.Sprintf("Rotation3 [axis=%v, angle=%v]", axis, angle)
}
