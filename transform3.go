package affine

import (
	"fmt"

	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform3 is a generic 3D transformation stored as a homogeneous 4x4
// matrix. Every specialized 3D transformation converts into it with
// ToTransform, which makes it the representation used to compose
// transformations of different kinds. Projective matrices are also
// representable. The zero value is the identity.
type Transform3 struct {
	m Mat4
}

// NewTransform3 returns the transform with homogeneous matrix m.
func NewTransform3(m Mat4) Transform3 { return Transform3{m: m} }

// Matrix returns the homogeneous matrix of the transform.
func (t Transform3) Matrix() Mat4 { return t.m }

// ToTransform returns t.
func (t Transform3) ToTransform() Transform3 { return t }

// TransformPoint applies t to p in homogeneous coordinates with w=1
// and divides by the resulting w.
func (t Transform3) TransformPoint(p r3.Vec) r3.Vec { return t.m.MulPos(p) }

// TransformVector applies t to v in homogeneous coordinates with w=0.
func (t Transform3) TransformVector(v r3.Vec) r3.Vec { return t.m.MulDir(v) }

// Inverse returns the inverse transform. ok is false if the
// matrix is singular.
func (t Transform3) Inverse() (inv Transform3, ok bool) {
	m, ok := t.m.Inverse()
	return Transform3{m: m}, ok
}

// InverseTransformPoint applies the inverse of t to p. ok is false if
// t is not invertible.
func (t Transform3) InverseTransformPoint(p r3.Vec) (_ r3.Vec, ok bool) {
	inv, ok := t.Inverse()
	if !ok {
		return r3.Vec{}, false
	}
	return inv.TransformPoint(p), true
}

// InverseTransformVector applies the inverse of t to v. ok is false if
// t is not invertible.
func (t Transform3) InverseTransformVector(v r3.Vec) (_ r3.Vec, ok bool) {
	inv, ok := t.Inverse()
	if !ok {
		return r3.Vec{}, false
	}
	return inv.TransformVector(v), true
}

// Mul returns the composition of t and b. b is applied first.
func (t Transform3) Mul(b Transform3) Transform3 { return Transform3{m: t.m.Mul(b.m)} }

// IsAffine reports whether the last row of the matrix is [0 0 0 1]
// to within tol, that is, whether t maps parallel lines to parallel lines.
func (t Transform3) IsAffine(tol Tolerance) bool {
	return tol.Equal(t.m.x30, 0) && tol.Equal(t.m.x31, 0) &&
		tol.Equal(t.m.x32, 0) && tol.Equal(t.m.d33, 0)
}

// ApplyBox transforms a 3d bounding box and resizes it for axis-alignment.
func (t Transform3) ApplyBox(box r3.Box) r3.Box {
	if t.m == (Mat4{}) {
		return box
	}
	vs := d3.Box(box).Vertices()
	for i := range vs {
		vs[i] = t.TransformPoint(vs[i])
	}
	return r3.Box(d3.BoundsOf(vs))
}

// EqualWithin tests the equality of the transforms to within a tolerance.
func (t Transform3) EqualWithin(b Transform3, tol Tolerance) bool {
	return t.m.EqualWithin(b.m, tol)
}

func (t Transform3) String() string {
	return fmt.Sprintf("Transform3 %v", t.m.Array())
}
