package affine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Isometry2 is a rigid motion of 2D space: a rotation about the origin
// followed by a translation. Applied to a point p the result is
//
//	R·p + t
//
// The zero value of Isometry2 is the identity.
type Isometry2 struct {
	t Translation2
	r Rotation2
}

// NewIsometry2 returns the isometry that rotates by r and then translates by t.
func NewIsometry2(t Translation2, r Rotation2) Isometry2 {
	return Isometry2{t: t, r: r}
}

// Isometry2FromRotation returns the isometry with rotation r and no translation.
func Isometry2FromRotation(r Rotation2) Isometry2 { return Isometry2{r: r} }

// Isometry2FromTranslation returns the isometry that only translates by t.
func Isometry2FromTranslation(t Translation2) Isometry2 { return Isometry2{t: t} }

// Isometry2FromAngle returns the isometry that rotates by angle radians
// and then translates by translation.
func Isometry2FromAngle(translation r2.Vec, angle float64) Isometry2 {
	return Isometry2{t: NewTranslation2(translation), r: NewRotation2(angle)}
}

// Translation returns the translational part of the isometry.
func (iso Isometry2) Translation() Translation2 { return iso.t }

// Rotation returns the rotational part of the isometry.
func (iso Isometry2) Rotation() Rotation2 { return iso.r }

// TransformPoint returns R·p + t.
func (iso Isometry2) TransformPoint(p r2.Vec) r2.Vec {
	return iso.t.TranslatePoint(iso.r.RotatePoint(p))
}

// TransformVector returns R·v. Vectors are not translated.
func (iso Isometry2) TransformVector(v r2.Vec) r2.Vec {
	return iso.r.RotateVector(v)
}

// InverseTransformPoint returns Rᵀ·(p - t) without inverting the isometry.
func (iso Isometry2) InverseTransformPoint(p r2.Vec) r2.Vec {
	return iso.r.InverseRotateVector(iso.t.InverseTranslatePoint(p))
}

// InverseTransformVector returns Rᵀ·v.
func (iso Isometry2) InverseTransformVector(v r2.Vec) r2.Vec {
	return iso.r.InverseRotateVector(v)
}

// Invert inverts the isometry in place. The inverse rotation is
// the transpose and the translation must be rotated back into the
// new frame: t' = -Rᵀ·t.
func (iso *Isometry2) Invert() {
	iso.r = iso.r.Inverse()
	iso.t = NewTranslation2(r2.Scale(-1, iso.r.RotateVector(iso.t.v)))
}

// Inverse returns the inverse of the isometry.
func (iso Isometry2) Inverse() Isometry2 {
	iso.Invert()
	return iso
}

// Mul returns the composition of iso and b. b is applied first.
// The translation of b is rotated into the frame of iso before being added.
func (iso Isometry2) Mul(b Isometry2) Isometry2 {
	return Isometry2{
		t: NewTranslation2(r2.Add(iso.t.v, iso.r.RotateVector(b.t.v))),
		r: iso.r.Mul(b.r),
	}
}

// Matrix returns the homogeneous matrix of the isometry.
func (iso Isometry2) Matrix() Mat3 { return affineMat3(iso.r.m, iso.t.v) }

// ToTransform returns the isometry as a generic 2D transform.
func (iso Isometry2) ToTransform() Transform2 { return Transform2{m: iso.Matrix()} }

// EqualWithin tests the equality of the isometries to within a tolerance.
func (iso Isometry2) EqualWithin(b Isometry2, tol Tolerance) bool {
	return iso.r.EqualWithin(b.r, tol) && iso.t.EqualWithin(b.t, tol)
}

func (iso Isometry2) String() string {
	return fmt.Sprintf("Isometry2 [rotation=%v, translation=%v]", iso.r.Angle(), iso.t.v)
}
