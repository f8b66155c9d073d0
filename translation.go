package affine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Translation2 is a displacement in 2D space. Points are moved by the
// displacement while vectors are left untouched.
// The zero value of Translation2 is the identity.
type Translation2 struct {
	v r2.Vec
}

// NewTranslation2 returns the translation by v.
func NewTranslation2(v r2.Vec) Translation2 { return Translation2{v: v} }

// Vector returns the displacement.
func (t Translation2) Vector() r2.Vec { return t.v }

// TranslatePoint returns p+v.
func (t Translation2) TranslatePoint(p r2.Vec) r2.Vec { return r2.Add(p, t.v) }

// InverseTranslatePoint returns p-v.
func (t Translation2) InverseTranslatePoint(p r2.Vec) r2.Vec { return r2.Sub(p, t.v) }

// TranslateVector returns v unchanged, directions have no position.
func (t Translation2) TranslateVector(v r2.Vec) r2.Vec { return v }

// Inverse returns the opposite translation.
func (t Translation2) Inverse() Translation2 { return Translation2{v: r2.Scale(-1, t.v)} }

// Mul returns the composition of t and b, the sum of the displacements.
func (t Translation2) Mul(b Translation2) Translation2 { return Translation2{v: r2.Add(t.v, b.v)} }

// TransformPoint returns p+v.
func (t Translation2) TransformPoint(p r2.Vec) r2.Vec { return t.TranslatePoint(p) }

// TransformVector returns v unchanged.
func (t Translation2) TransformVector(v r2.Vec) r2.Vec { return v }

// Matrix returns the homogeneous matrix of the translation.
func (t Translation2) Matrix() Mat3 { return affineMat3(Mat2{}, t.v) }

// ToTransform returns the translation as a generic 2D transform.
func (t Translation2) ToTransform() Transform2 { return Transform2{m: t.Matrix()} }

// EqualWithin tests the equality of the translations to within a tolerance.
func (t Translation2) EqualWithin(b Translation2, tol Tolerance) bool {
	return tol.equalR2(t.v, b.v)
}

func (t Translation2) String() string {
	return fmt.Sprintf("Translation2 [%v, %v]", t.v.X, t.v.Y)
}

// Translation3 is a displacement in 3D space. Points are moved by the
// displacement while vectors are left untouched.
// The zero value of Translation3 is the identity.
type Translation3 struct {
	v r3.Vec
}

// NewTranslation3 returns the translation by v.
func NewTranslation3(v r3.Vec) Translation3 { return Translation3{v: v} }

// Vector returns the displacement.
func (t Translation3) Vector() r3.Vec { return t.v }

// TranslatePoint returns p+v.
func (t Translation3) TranslatePoint(p r3.Vec) r3.Vec { return r3.Add(p, t.v) }

// InverseTranslatePoint returns p-v.
func (t Translation3) InverseTranslatePoint(p r3.Vec) r3.Vec { return r3.Sub(p, t.v) }

// TranslateVector returns v unchanged, directions have no position.
func (t Translation3) TranslateVector(v r3.Vec) r3.Vec { return v }

// Inverse returns the opposite translation.
func (t Translation3) Inverse() Translation3 { return Translation3{v: r3.Scale(-1, t.v)} }

// Mul returns the composition of t and b, the sum of the displacements.
func (t Translation3) Mul(b Translation3) Translation3 { return Translation3{v: r3.Add(t.v, b.v)} }

// TransformPoint returns p+v.
func (t Translation3) TransformPoint(p r3.Vec) r3.Vec { return t.TranslatePoint(p) }

// TransformVector returns v unchanged.
func (t Translation3) TransformVector(v r3.Vec) r3.Vec { return v }

// Matrix returns the homogeneous matrix of the translation.
func (t Translation3) Matrix() Mat4 { return affineMat4(Mat3{}, t.v) }

// ToTransform returns the translation as a generic 3D transform.
func (t Translation3) ToTransform() Transform3 { return Transform3{m: t.Matrix()} }

// EqualWithin tests the equality of the translations to within a tolerance.
func (t Translation3) EqualWithin(b Translation3, tol Tolerance) bool {
	return tol.equalR3(t.v, b.v)
}

func (t Translation3) String() string {
	return fmt.Sprintf("Translation3 [%v, %v, %v]", t.v.X, t.v.Y, t.v.Z)
}
