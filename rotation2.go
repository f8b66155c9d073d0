package affine

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotation2 is a rotation about the origin in 2D space stored
// as an orthogonal 2x2 matrix. Positive angles rotate the X axis
// towards the Y axis. The zero value of Rotation2 is the identity rotation.
type Rotation2 struct {
	m Mat2
}

// NewRotation2 returns the rotation by angle radians.
func NewRotation2(angle float64) Rotation2 {
	if angle == 0 {
		return Rotation2{}
	}
	s, c := math.Sincos(angle)
	return Rotation2{m: mat2(c, -s, s, c)}
}

// Rotation2FromComplex returns the rotation by the argument of z.
// The modulus of z is ignored. z must be non-zero.
func Rotation2FromComplex(z complex128) Rotation2 {
	abs := cmplx.Abs(z)
	c, s := real(z)/abs, imag(z)/abs
	return Rotation2{m: mat2(c, -s, s, c)}
}

// Rotation2Between returns the rotation that takes the direction
// of a onto the direction of b. Both vectors must be non-zero.
func Rotation2Between(a, b r2.Vec) Rotation2 {
	a, b = r2.Unit(a), r2.Unit(b)
	c := Clamp(r2.Dot(a, b), -1, 1)
	s := r2.Cross(a, b)
	return Rotation2{m: mat2(c, -s, s, c)}
}

// Angle returns the rotation angle in radians in the range (-pi, pi].
func (r Rotation2) Angle() float64 {
	return math.Atan2(r.m.x10, r.m.d00+1)
}

// Complex returns the rotation as the unit complex number cos(θ)+i·sin(θ).
func (r Rotation2) Complex() complex128 {
	return complex(r.m.d00+1, r.m.x10)
}

// Matrix returns the rotation matrix.
func (r Rotation2) Matrix() Mat2 { return r.m }

// RotateVector rotates v.
func (r Rotation2) RotateVector(v r2.Vec) r2.Vec { return r.m.MulVec(v) }

// RotatePoint rotates p about the origin.
func (r Rotation2) RotatePoint(p r2.Vec) r2.Vec { return r.m.MulVec(p) }

// InverseRotateVector applies the inverse rotation to v.
func (r Rotation2) InverseRotateVector(v r2.Vec) r2.Vec { return r.m.MulVecTrans(v) }

// Inverse returns the inverse rotation. Since the rotation matrix is
// orthogonal this is its transpose.
func (r Rotation2) Inverse() Rotation2 {
	return Rotation2{m: r.m.Transpose()}
}

// Mul returns the composition of r and b. b is applied first.
func (r Rotation2) Mul(b Rotation2) Rotation2 {
	return Rotation2{m: r.m.Mul(b.m)}
}

// TransformPoint rotates p about the origin.
func (r Rotation2) TransformPoint(p r2.Vec) r2.Vec { return r.RotatePoint(p) }

// TransformVector rotates v.
func (r Rotation2) TransformVector(v r2.Vec) r2.Vec { return r.RotateVector(v) }

// ToTransform returns the rotation as a generic 2D transform.
func (r Rotation2) ToTransform() Transform2 {
	return Transform2{m: affineMat3(r.m, r2.Vec{})}
}

// EqualWithin tests the equality of the rotations to within a tolerance.
func (r Rotation2) EqualWithin(b Rotation2, tol Tolerance) bool {
	return r.m.EqualWithin(b.m, tol)
}

func (r Rotation2) String() string {
	return fmt.Sprintf("Rotation2 [angle=%v]", r.Angle())
}
