package affine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Isometry3 is a rigid motion of 3D space: a rotation about the origin
// followed by a translation. Applied to a point p the result is
//
//	R·p + t
//
// The zero value of Isometry3 is the identity.
type Isometry3 struct {
	t Translation3
	r Rotation3
}

// NewIsometry3 returns the isometry that rotates by r and then translates by t.
func NewIsometry3(t Translation3, r Rotation3) Isometry3 {
	return Isometry3{t: t, r: r}
}

// Isometry3FromRotation returns the isometry with rotation r and no translation.
func Isometry3FromRotation(r Rotation3) Isometry3 { return Isometry3{r: r} }

// Isometry3FromTranslation returns the isometry that only translates by t.
func Isometry3FromTranslation(t Translation3) Isometry3 { return Isometry3{t: t} }

// Isometry3FromAxisAngle returns the isometry that rotates by angle radians
// about axis and then translates by translation.
func Isometry3FromAxisAngle(translation, axis r3.Vec, angle float64) Isometry3 {
	return Isometry3{t: NewTranslation3(translation), r: NewRotation3(axis, angle)}
}

// Isometry3LookToLH returns the left-handed world-to-view isometry of a
// camera at eye looking along direction. eye is mapped to the origin and
// direction to +Z. direction must not be parallel to up.
func Isometry3LookToLH(eye, direction, up r3.Vec) Isometry3 {
	return lookTo(eye, Rotation3LookToLH(direction, up))
}

// Isometry3LookToRH returns the right-handed world-to-view isometry of a
// camera at eye looking along direction. eye is mapped to the origin and
// direction to -Z. direction must not be parallel to up.
func Isometry3LookToRH(eye, direction, up r3.Vec) Isometry3 {
	return lookTo(eye, Rotation3LookToRH(direction, up))
}

// Isometry3LookAtLH is Isometry3LookToLH with the direction from eye to target.
func Isometry3LookAtLH(eye, target, up r3.Vec) Isometry3 {
	return Isometry3LookToLH(eye, r3.Sub(target, eye), up)
}

// Isometry3LookAtRH is Isometry3LookToRH with the direction from eye to target.
func Isometry3LookAtRH(eye, target, up r3.Vec) Isometry3 {
	return Isometry3LookToRH(eye, r3.Sub(target, eye), up)
}

// Isometry3LookToLHInv returns the view-to-world inverse of Isometry3LookToLH.
// It maps the origin to eye and +Z to direction.
func Isometry3LookToLHInv(eye, direction, up r3.Vec) Isometry3 {
	return lookToInv(eye, Rotation3LookToLH(direction, up))
}

// Isometry3LookToRHInv returns the view-to-world inverse of Isometry3LookToRH.
// It maps the origin to eye and -Z to direction.
func Isometry3LookToRHInv(eye, direction, up r3.Vec) Isometry3 {
	return lookToInv(eye, Rotation3LookToRH(direction, up))
}

// Isometry3LookAtLHInv is Isometry3LookToLHInv with the direction from eye to target.
func Isometry3LookAtLHInv(eye, target, up r3.Vec) Isometry3 {
	return Isometry3LookToLHInv(eye, r3.Sub(target, eye), up)
}

// Isometry3LookAtRHInv is Isometry3LookToRHInv with the direction from eye to target.
func Isometry3LookAtRHInv(eye, target, up r3.Vec) Isometry3 {
	return Isometry3LookToRHInv(eye, r3.Sub(target, eye), up)
}

func lookTo(eye r3.Vec, view Rotation3) Isometry3 {
	return Isometry3{
		t: NewTranslation3(r3.Scale(-1, view.RotatePoint(eye))),
		r: view,
	}
}

func lookToInv(eye r3.Vec, view Rotation3) Isometry3 {
	return Isometry3{t: NewTranslation3(eye), r: view.Inverse()}
}

// Translation returns the translational part of the isometry.
func (iso Isometry3) Translation() Translation3 { return iso.t }

// Rotation returns the rotational part of the isometry.
func (iso Isometry3) Rotation() Rotation3 { return iso.r }

// TransformPoint returns R·p + t.
func (iso Isometry3) TransformPoint(p r3.Vec) r3.Vec {
	return iso.t.TranslatePoint(iso.r.RotatePoint(p))
}

// TransformVector returns R·v. Vectors are not translated.
func (iso Isometry3) TransformVector(v r3.Vec) r3.Vec {
	return iso.r.RotateVector(v)
}

// InverseTransformPoint returns Rᵀ·(p - t) without inverting the isometry.
func (iso Isometry3) InverseTransformPoint(p r3.Vec) r3.Vec {
	return iso.r.InverseRotateVector(iso.t.InverseTranslatePoint(p))
}

// InverseTransformVector returns Rᵀ·v.
func (iso Isometry3) InverseTransformVector(v r3.Vec) r3.Vec {
	return iso.r.InverseRotateVector(v)
}

// Invert inverts the isometry in place. The inverse rotation is
// the transpose and the translation must be rotated back into the
// new frame: t' = -Rᵀ·t.
func (iso *Isometry3) Invert() {
	iso.r = iso.r.Inverse()
	iso.t = NewTranslation3(r3.Scale(-1, iso.r.RotateVector(iso.t.v)))
}

// Inverse returns the inverse of the isometry.
func (iso Isometry3) Inverse() Isometry3 {
	iso.Invert()
	return iso
}

// Mul returns the composition of iso and b. b is applied first.
// The translation of b is rotated into the frame of iso before being added.
func (iso Isometry3) Mul(b Isometry3) Isometry3 {
	return Isometry3{
		t: NewTranslation3(r3.Add(iso.t.v, iso.r.RotateVector(b.t.v))),
		r: iso.r.Mul(b.r),
	}
}

// Matrix returns the homogeneous matrix of the isometry.
func (iso Isometry3) Matrix() Mat4 { return affineMat4(iso.r.m, iso.t.v) }

// ToTransform returns the isometry as a generic 3D transform.
func (iso Isometry3) ToTransform() Transform3 { return Transform3{m: iso.Matrix()} }

// EqualWithin tests the equality of the isometries to within a tolerance.
func (iso Isometry3) EqualWithin(b Isometry3, tol Tolerance) bool {
	return iso.r.EqualWithin(b.r, tol) && iso.t.EqualWithin(b.t, tol)
}

func (iso Isometry3) String() string {
	return fmt.Sprintf("Isometry3 [rotation=%v, translation=%v]", iso.r.m.Array(), iso.t.v)
}
