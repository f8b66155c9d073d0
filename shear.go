package affine

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shear2 is a 2D shear along one coordinate axis. Its matrix has a unit
// diagonal and determinant one. Shear2 has no dedicated inverse or
// composition; convert it with ToTransform for those.
// The zero value of Shear2 is the identity.
type Shear2 struct {
	m Mat2
}

// Shear2X returns the shear along the X axis proportional to Y:
//
//	x' = x + sy·y
func Shear2X(sy float64) Shear2 { return Shear2{m: Mat2{x01: sy}} }

// Shear2Y returns the shear along the Y axis proportional to X:
//
//	y' = y + sx·x
func Shear2Y(sx float64) Shear2 { return Shear2{m: Mat2{x10: sx}} }

// Matrix returns the shear matrix.
func (s Shear2) Matrix() Mat2 { return s.m }

// TransformPoint shears p.
func (s Shear2) TransformPoint(p r2.Vec) r2.Vec { return s.m.MulVec(p) }

// TransformVector shears v.
func (s Shear2) TransformVector(v r2.Vec) r2.Vec { return s.m.MulVec(v) }

// ToTransform returns the shear as a generic 2D transform.
func (s Shear2) ToTransform() Transform2 {
	return Transform2{m: affineMat3(s.m, r2.Vec{})}
}

// Shear3 is a 3D shear along one coordinate axis. Its matrix has a unit
// diagonal and determinant one. Shear3 has no dedicated inverse or
// composition; convert it with ToTransform for those.
// The zero value of Shear3 is the identity.
type Shear3 struct {
	m Mat3
}

// Shear3X returns the shear along the X axis:
//
//	x' = x + sy·y + sz·z
func Shear3X(sy, sz float64) Shear3 { return Shear3{m: Mat3{x01: sy, x02: sz}} }

// Shear3Y returns the shear along the Y axis:
//
//	y' = y + sx·x + sz·z
func Shear3Y(sx, sz float64) Shear3 { return Shear3{m: Mat3{x10: sx, x12: sz}} }

// Shear3Z returns the shear along the Z axis:
//
//	z' = z + sx·x + sy·y
func Shear3Z(sx, sy float64) Shear3 { return Shear3{m: Mat3{x20: sx, x21: sy}} }

// Matrix returns the shear matrix.
func (s Shear3) Matrix() Mat3 { return s.m }

// TransformPoint shears p.
func (s Shear3) TransformPoint(p r3.Vec) r3.Vec { return s.m.MulVec(p) }

// TransformVector shears v.
func (s Shear3) TransformVector(v r3.Vec) r3.Vec { return s.m.MulVec(v) }

// ToTransform returns the shear as a generic 3D transform.
func (s Shear3) ToTransform() Transform3 {
	return Transform3{m: affineMat4(s.m, r3.Vec{})}
}
