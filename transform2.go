package affine

import (
	"fmt"

	"github.com/soypat/affine/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform2 is a generic 2D transformation stored as a homogeneous 3x3
// matrix. Every specialized 2D transformation converts into it with
// ToTransform, which makes it the representation used to compose
// transformations of different kinds. The zero value is the identity.
type Transform2 struct {
	m Mat3
}

// NewTransform2 returns the transform with homogeneous matrix m.
func NewTransform2(m Mat3) Transform2 { return Transform2{m: m} }

// Matrix returns the homogeneous matrix of the transform.
func (t Transform2) Matrix() Mat3 { return t.m }

// ToTransform returns t.
func (t Transform2) ToTransform() Transform2 { return t }

// TransformPoint applies t to p in homogeneous coordinates with w=1
// and divides by the resulting w.
func (t Transform2) TransformPoint(p r2.Vec) r2.Vec { return t.m.MulPos(p) }

// TransformVector applies t to v in homogeneous coordinates with w=0.
func (t Transform2) TransformVector(v r2.Vec) r2.Vec { return t.m.MulDir(v) }

// Inverse returns the inverse transform. ok is false if the
// matrix is singular.
func (t Transform2) Inverse() (inv Transform2, ok bool) {
	m, ok := t.m.Inverse()
	return Transform2{m: m}, ok
}

// InverseTransformPoint applies the inverse of t to p. ok is false if
// t is not invertible.
func (t Transform2) InverseTransformPoint(p r2.Vec) (_ r2.Vec, ok bool) {
	inv, ok := t.Inverse()
	if !ok {
		return r2.Vec{}, false
	}
	return inv.TransformPoint(p), true
}

// InverseTransformVector applies the inverse of t to v. ok is false if
// t is not invertible.
func (t Transform2) InverseTransformVector(v r2.Vec) (_ r2.Vec, ok bool) {
	inv, ok := t.Inverse()
	if !ok {
		return r2.Vec{}, false
	}
	return inv.TransformVector(v), true
}

// Mul returns the composition of t and b. b is applied first.
func (t Transform2) Mul(b Transform2) Transform2 { return Transform2{m: t.m.Mul(b.m)} }

// IsAffine reports whether the last row of the matrix is [0 0 1]
// to within tol, that is, whether t maps parallel lines to parallel lines.
func (t Transform2) IsAffine(tol Tolerance) bool {
	return tol.Equal(t.m.x20, 0) && tol.Equal(t.m.x21, 0) && tol.Equal(t.m.d22, 0)
}

// ApplyBox transforms a 2d bounding box and resizes it for axis-alignment.
func (t Transform2) ApplyBox(box r2.Box) r2.Box {
	if t.m == (Mat3{}) {
		return box
	}
	if !t.IsAffine(Tolerance{}) {
		vs := d2.Box(box).Vertices()
		for i := range vs {
			vs[i] = t.TransformPoint(vs[i])
		}
		return r2.Box(d2.BoundsOf(vs))
	}
	// http://dev.theomader.com/transform-bounding-boxes/
	r := r2.Vec{X: t.m.d00 + 1, Y: t.m.x10}
	u := r2.Vec{X: t.m.x01, Y: t.m.d11 + 1}
	xa := r2.Scale(box.Min.X, r)
	xb := r2.Scale(box.Max.X, r)
	ya := r2.Scale(box.Min.Y, u)
	yb := r2.Scale(box.Max.Y, u)
	xa, xb = d2.MinElem(xa, xb), d2.MaxElem(xa, xb)
	ya, yb = d2.MinElem(ya, yb), d2.MaxElem(ya, yb)
	tr := t.m.Translation()
	return r2.Box{
		Min: r2.Add(r2.Add(xa, ya), tr),
		Max: r2.Add(r2.Add(xb, yb), tr),
	}
}

// EqualWithin tests the equality of the transforms to within a tolerance.
func (t Transform2) EqualWithin(b Transform2, tol Tolerance) bool {
	return t.m.EqualWithin(b.m, tol)
}

func (t Transform2) String() string {
	return fmt.Sprintf("Transform2 %v", t.m.Array())
}
