package affine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Similarity2 is an isometry preceded by a uniform scale about the origin.
// Applied to a point p the result is
//
//	R·(s·p) + t
//
// The zero value of Similarity2 is the identity.
type Similarity2 struct {
	iso Isometry2
	k   factor
}

// NewSimilarity2 returns the similarity that scales by scale, rotates by r
// and then translates by t. scale must be non-zero for the similarity to be
// invertible.
func NewSimilarity2(t Translation2, r Rotation2, scale float64) Similarity2 {
	return Similarity2{iso: NewIsometry2(t, r), k: newFactor(scale)}
}

// Similarity2FromIsometry returns the similarity that scales by scale and
// then applies iso.
func Similarity2FromIsometry(iso Isometry2, scale float64) Similarity2 {
	return Similarity2{iso: iso, k: newFactor(scale)}
}

// Similarity2FromScale returns the similarity that only scales by scale.
func Similarity2FromScale(scale float64) Similarity2 { return Similarity2{k: newFactor(scale)} }

// Similarity2FromRotation returns the similarity that only rotates by r.
func Similarity2FromRotation(r Rotation2) Similarity2 {
	return Similarity2{iso: Isometry2FromRotation(r)}
}

// Similarity2FromTranslation returns the similarity that only translates by t.
func Similarity2FromTranslation(t Translation2) Similarity2 {
	return Similarity2{iso: Isometry2FromTranslation(t)}
}

// Similarity2FromAngle returns the similarity that scales by scale, rotates
// by angle radians and then translates by translation.
func Similarity2FromAngle(translation r2.Vec, angle, scale float64) Similarity2 {
	return Similarity2{iso: Isometry2FromAngle(translation, angle), k: newFactor(scale)}
}

// Scale returns the uniform scale factor.
func (s Similarity2) Scale() float64 { return s.k.get() }

// Isometry returns the isometric part of the similarity, applied after scaling.
func (s Similarity2) Isometry() Isometry2 { return s.iso }

// Rotation returns the rotational part of the similarity.
func (s Similarity2) Rotation() Rotation2 { return s.iso.r }

// Translation returns the translational part of the similarity.
func (s Similarity2) Translation() Translation2 { return s.iso.t }

// TransformPoint returns R·(s·p) + t.
func (s Similarity2) TransformPoint(p r2.Vec) r2.Vec {
	return s.iso.TransformPoint(r2.Scale(s.k.get(), p))
}

// TransformVector returns R·(s·v). Vectors are not translated.
func (s Similarity2) TransformVector(v r2.Vec) r2.Vec {
	return s.iso.TransformVector(r2.Scale(s.k.get(), v))
}

// InverseTransformPoint returns Rᵀ·(p - t)/s without inverting the similarity.
func (s Similarity2) InverseTransformPoint(p r2.Vec) r2.Vec {
	return r2.Scale(1/s.k.get(), s.iso.InverseTransformPoint(p))
}

// InverseTransformVector returns Rᵀ·v/s.
func (s Similarity2) InverseTransformVector(v r2.Vec) r2.Vec {
	return r2.Scale(1/s.k.get(), s.iso.InverseTransformVector(v))
}

// Invert inverts the similarity in place. The isometry is inverted in its
// own unscaled frame first and its translation is then scaled by the
// reciprocal scale. A zero scale yields infinities.
func (s *Similarity2) Invert() {
	inv := 1 / s.k.get()
	s.iso.Invert()
	s.iso.t = NewTranslation2(r2.Scale(inv, s.iso.t.v))
	s.k = newFactor(inv)
}

// Inverse returns the inverse of the similarity.
func (s Similarity2) Inverse() Similarity2 {
	s.Invert()
	return s
}

// Mul returns the composition of s and b. b is applied first.
// The translation of b is rotated and scaled into the frame of s before
// being added.
func (s Similarity2) Mul(b Similarity2) Similarity2 {
	sa := s.k.get()
	shift := r2.Scale(sa, s.iso.r.RotateVector(b.iso.t.v))
	return Similarity2{
		iso: Isometry2{
			t: NewTranslation2(r2.Add(s.iso.t.v, shift)),
			r: s.iso.r.Mul(b.iso.r),
		},
		k: newFactor(sa * b.k.get()),
	}
}

// MulIsometry returns the composition of s and b. b is applied first.
func (s Similarity2) MulIsometry(b Isometry2) Similarity2 {
	return s.Mul(Similarity2{iso: b})
}

// Matrix returns the homogeneous matrix of the similarity with s·R in
// the upper left block and the translation in the last column.
func (s Similarity2) Matrix() Mat3 {
	return affineMat3(s.iso.r.m.Scale(s.k.get()), s.iso.t.v)
}

// ToTransform returns the similarity as a generic 2D transform.
func (s Similarity2) ToTransform() Transform2 { return Transform2{m: s.Matrix()} }

// EqualWithin tests the equality of the similarities to within a tolerance.
func (s Similarity2) EqualWithin(b Similarity2, tol Tolerance) bool {
	return tol.Equal(s.k.get(), b.k.get()) && s.iso.EqualWithin(b.iso, tol)
}

func (s Similarity2) String() string {
	return fmt.Sprintf("Similarity2 [scale=%v, rotation=%v, translation=%v]", s.k.get(), s.iso.r.Angle(), s.iso.t.v)
}
