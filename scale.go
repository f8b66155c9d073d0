package affine

import (
	"fmt"

	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scale2 scales 2D space along the coordinate axes about the origin.
// The zero value of Scale2 is the identity.
type Scale2 struct {
	f   r2.Vec
	set bool
}

// NewScale2 returns the scale by sx along X and sy along Y.
func NewScale2(sx, sy float64) Scale2 {
	if sx == 1 && sy == 1 {
		return Scale2{}
	}
	return Scale2{f: r2.Vec{X: sx, Y: sy}, set: true}
}

// UniformScale2 returns the scale by s along both axes.
func UniformScale2(s float64) Scale2 { return NewScale2(s, s) }

// Factors returns the scale factor along each axis.
func (s Scale2) Factors() r2.Vec {
	if !s.set {
		return r2.Vec{X: 1, Y: 1}
	}
	return s.f
}

// ScaleVector returns v scaled componentwise.
func (s Scale2) ScaleVector(v r2.Vec) r2.Vec {
	f := s.Factors()
	return r2.Vec{X: v.X * f.X, Y: v.Y * f.Y}
}

// ScalePoint returns p scaled componentwise about the origin.
func (s Scale2) ScalePoint(p r2.Vec) r2.Vec { return s.ScaleVector(p) }

// Inverse returns the scale by the reciprocal factors. If any factor
// is zero Inverse returns the identity and false.
func (s Scale2) Inverse() (Scale2, bool) {
	f := s.Factors()
	if f.X == 0 || f.Y == 0 {
		return Scale2{}, false
	}
	return NewScale2(1/f.X, 1/f.Y), true
}

// Mul returns the composition of s and b, the product of the factors.
func (s Scale2) Mul(b Scale2) Scale2 {
	f, g := s.Factors(), b.Factors()
	return NewScale2(f.X*g.X, f.Y*g.Y)
}

// TransformPoint scales p about the origin.
func (s Scale2) TransformPoint(p r2.Vec) r2.Vec { return s.ScalePoint(p) }

// TransformVector scales v.
func (s Scale2) TransformVector(v r2.Vec) r2.Vec { return s.ScaleVector(v) }

// Matrix returns the diagonal scale matrix.
func (s Scale2) Matrix() Mat2 {
	f := s.Factors()
	return mat2(f.X, 0, 0, f.Y)
}

// ToTransform returns the scale as a generic 2D transform.
func (s Scale2) ToTransform() Transform2 {
	return Transform2{m: affineMat3(s.Matrix(), r2.Vec{})}
}

// EqualWithin tests the equality of the scales to within a tolerance.
func (s Scale2) EqualWithin(b Scale2, tol Tolerance) bool {
	return tol.equalR2(s.Factors(), b.Factors())
}

func (s Scale2) String() string {
	f := s.Factors()
	return fmt.Sprintf("Scale2 [%v, %v]", f.X, f.Y)
}

// Scale3 scales 3D space along the coordinate axes about the origin.
// The zero value of Scale3 is the identity.
type Scale3 struct {
	f   r3.Vec
	set bool
}

// NewScale3 returns the scale by sx, sy and sz along the X, Y and Z axes.
func NewScale3(sx, sy, sz float64) Scale3 {
	if sx == 1 && sy == 1 && sz == 1 {
		return Scale3{}
	}
	return Scale3{f: r3.Vec{X: sx, Y: sy, Z: sz}, set: true}
}

// UniformScale3 returns the scale by s along all axes.
func UniformScale3(s float64) Scale3 { return NewScale3(s, s, s) }

// Factors returns the scale factor along each axis.
func (s Scale3) Factors() r3.Vec {
	if !s.set {
		return r3.Vec{X: 1, Y: 1, Z: 1}
	}
	return s.f
}

// ScaleVector returns v scaled componentwise.
func (s Scale3) ScaleVector(v r3.Vec) r3.Vec {
	return d3.MulElem(s.Factors(), v)
}

// ScalePoint returns p scaled componentwise about the origin.
func (s Scale3) ScalePoint(p r3.Vec) r3.Vec { return s.ScaleVector(p) }

// Inverse returns the scale by the reciprocal factors. If any factor
// is zero Inverse returns the identity and false.
func (s Scale3) Inverse() (Scale3, bool) {
	f := s.Factors()
	if f.X == 0 || f.Y == 0 || f.Z == 0 {
		return Scale3{}, false
	}
	return NewScale3(1/f.X, 1/f.Y, 1/f.Z), true
}

// Mul returns the composition of s and b, the product of the factors.
func (s Scale3) Mul(b Scale3) Scale3 {
	f, g := s.Factors(), b.Factors()
	return NewScale3(f.X*g.X, f.Y*g.Y, f.Z*g.Z)
}

// TransformPoint scales p about the origin.
func (s Scale3) TransformPoint(p r3.Vec) r3.Vec { return s.ScalePoint(p) }

// TransformVector scales v.
func (s Scale3) TransformVector(v r3.Vec) r3.Vec { return s.ScaleVector(v) }

// Matrix returns the diagonal scale matrix.
func (s Scale3) Matrix() Mat3 {
	f := s.Factors()
	return mat3(f.X, 0, 0, 0, f.Y, 0, 0, 0, f.Z)
}

// ToTransform returns the scale as a generic 3D transform.
func (s Scale3) ToTransform() Transform3 {
	return Transform3{m: affineMat4(s.Matrix(), r3.Vec{})}
}

// EqualWithin tests the equality of the scales to within a tolerance.
func (s Scale3) EqualWithin(b Scale3, tol Tolerance) bool {
	return tol.equalR3(s.Factors(), b.Factors())
}

func (s Scale3) String() string {
	f := s.Factors()
	return fmt.Sprintf("Scale3 [%v, %v, %v]", f.X, f.Y, f.Z)
}
