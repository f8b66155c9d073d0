package affine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Similarity3 is an isometry preceded by a uniform scale about the origin.
// Applied to a point p the result is
//
//	R·(s·p) + t
//
// The zero value of Similarity3 is the identity.
type Similarity3 struct {
	iso Isometry3
	k   factor
}

// NewSimilarity3 returns the similarity that scales by scale, rotates by r
// and then translates by t. scale must be non-zero for the similarity to be
// invertible.
func NewSimilarity3(t Translation3, r Rotation3, scale float64) Similarity3 {
	return Similarity3{iso: NewIsometry3(t, r), k: newFactor(scale)}
}

// Similarity3FromIsometry returns the similarity that scales by scale and
// then applies iso.
func Similarity3FromIsometry(iso Isometry3, scale float64) Similarity3 {
	return Similarity3{iso: iso, k: newFactor(scale)}
}

// Similarity3FromScale returns the similarity that only scales by scale.
func Similarity3FromScale(scale float64) Similarity3 { return Similarity3{k: newFactor(scale)} }

// Similarity3FromRotation returns the similarity that only rotates by r.
func Similarity3FromRotation(r Rotation3) Similarity3 {
	return Similarity3{iso: Isometry3FromRotation(r)}
}

// Similarity3FromTranslation returns the similarity that only translates by t.
func Similarity3FromTranslation(t Translation3) Similarity3 {
	return Similarity3{iso: Isometry3FromTranslation(t)}
}

// Similarity3FromAxisAngle returns the similarity that scales by scale,
// rotates by angle radians about axis and then translates by translation.
func Similarity3FromAxisAngle(translation, axis r3.Vec, angle, scale float64) Similarity3 {
	return Similarity3{iso: Isometry3FromAxisAngle(translation, axis, angle), k: newFactor(scale)}
}

// Similarity3LookToLH is the unit scale similarity of Isometry3LookToLH.
func Similarity3LookToLH(eye, direction, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookToLH(eye, direction, up)}
}

// Similarity3LookToRH is the unit scale similarity of Isometry3LookToRH.
func Similarity3LookToRH(eye, direction, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookToRH(eye, direction, up)}
}

// Similarity3LookAtLH is the unit scale similarity of Isometry3LookAtLH.
func Similarity3LookAtLH(eye, target, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookAtLH(eye, target, up)}
}

// Similarity3LookAtRH is the unit scale similarity of Isometry3LookAtRH.
func Similarity3LookAtRH(eye, target, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookAtRH(eye, target, up)}
}

// Similarity3LookToLHInv is the unit scale similarity of Isometry3LookToLHInv.
func Similarity3LookToLHInv(eye, direction, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookToLHInv(eye, direction, up)}
}

// Similarity3LookToRHInv is the unit scale similarity of Isometry3LookToRHInv.
func Similarity3LookToRHInv(eye, direction, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookToRHInv(eye, direction, up)}
}

// Similarity3LookAtLHInv is the unit scale similarity of Isometry3LookAtLHInv.
func Similarity3LookAtLHInv(eye, target, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookAtLHInv(eye, target, up)}
}

// Similarity3LookAtRHInv is the unit scale similarity of Isometry3LookAtRHInv.
func Similarity3LookAtRHInv(eye, target, up r3.Vec) Similarity3 {
	return Similarity3{iso: Isometry3LookAtRHInv(eye, target, up)}
}

// Scale returns the uniform scale factor.
func (s Similarity3) Scale() float64 { return s.k.get() }

// Isometry returns the isometric part of the similarity, applied after scaling.
func (s Similarity3) Isometry() Isometry3 { return s.iso }

// Rotation returns the rotational part of the similarity.
func (s Similarity3) Rotation() Rotation3 { return s.iso.r }

// Translation returns the translational part of the similarity.
func (s Similarity3) Translation() Translation3 { return s.iso.t }

// TransformPoint returns R·(s·p) + t.
func (s Similarity3) TransformPoint(p r3.Vec) r3.Vec {
	return s.iso.TransformPoint(r3.Scale(s.k.get(), p))
}

// TransformVector returns R·(s·v). Vectors are not translated.
func (s Similarity3) TransformVector(v r3.Vec) r3.Vec {
	return s.iso.TransformVector(r3.Scale(s.k.get(), v))
}

// InverseTransformPoint returns Rᵀ·(p - t)/s without inverting the similarity.
func (s Similarity3) InverseTransformPoint(p r3.Vec) r3.Vec {
	return r3.Scale(1/s.k.get(), s.iso.InverseTransformPoint(p))
}

// InverseTransformVector returns Rᵀ·v/s.
func (s Similarity3) InverseTransformVector(v r3.Vec) r3.Vec {
	return r3.Scale(1/s.k.get(), s.iso.InverseTransformVector(v))
}

// Invert inverts the similarity in place. The isometry is inverted in its
// own unscaled frame first and its translation is then scaled by the
// reciprocal scale. A zero scale yields infinities.
func (s *Similarity3) Invert() {
	inv := 1 / s.k.get()
	s.iso.Invert()
	s.iso.t = NewTranslation3(r3.Scale(inv, s.iso.t.v))
	s.k = newFactor(inv)
}

// Inverse returns the inverse of the similarity.
func (s Similarity3) Inverse() Similarity3 {
	s.Invert()
	return s
}

// Mul returns the composition of s and b. b is applied first.
// The translation of b is rotated and scaled into the frame of s before
// being added.
func (s Similarity3) Mul(b Similarity3) Similarity3 {
	sa := s.k.get()
	shift := r3.Scale(sa, s.iso.r.RotateVector(b.iso.t.v))
	return Similarity3{
		iso: Isometry3{
			t: NewTranslation3(r3.Add(s.iso.t.v, shift)),
			r: s.iso.r.Mul(b.iso.r),
		},
		k: newFactor(sa * b.k.get()),
	}
}

// MulIsometry returns the composition of s and b. b is applied first.
func (s Similarity3) MulIsometry(b Isometry3) Similarity3 {
	return s.Mul(Similarity3{iso: b})
}

// Matrix returns the homogeneous matrix of the similarity with s·R in
// the upper left block and the translation in the last column.
func (s Similarity3) Matrix() Mat4 {
	return affineMat4(s.iso.r.m.Scale(s.k.get()), s.iso.t.v)
}

// ToTransform returns the similarity as a generic 3D transform.
func (s Similarity3) ToTransform() Transform3 { return Transform3{m: s.Matrix()} }

// EqualWithin tests the equality of the similarities to within a tolerance.
func (s Similarity3) EqualWithin(b Similarity3, tol Tolerance) bool {
	return tol.Equal(s.k.get(), b.k.get()) && s.iso.EqualWithin(b.iso, tol)
}

func (s Similarity3) String() string {
	return fmt.Sprintf("Similarity3 [scale=%v, rotation=%v, translation=%v]", s.k.get(), s.iso.r.m.Array(), s.iso.t.v)
}
