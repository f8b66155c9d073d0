package affine

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Reflection2 mirrors 2D space across a line. The linear part is the
// Householder matrix I - 2·n·nᵀ of the line's unit normal n, which is
// its own inverse and has determinant -1. Reflection2 has no dedicated
// inverse or composition; convert it with ToTransform for those.
// Reflection2 must be built with one of its constructors.
type Reflection2 struct {
	m Mat2
	t r2.Vec
}

// NewReflection2 returns the reflection across the line through the
// origin with the given normal. The normal is normalized.
// A zero normal yields NaNs.
func NewReflection2(normal r2.Vec) Reflection2 {
	n := r2.Unit(normal)
	return Reflection2{m: mat2(
		1-2*n.X*n.X, -2*n.X*n.Y,
		-2*n.X*n.Y, 1-2*n.Y*n.Y,
	)}
}

// Reflection2About returns the reflection across the line through point
// with the given normal.
func Reflection2About(normal, point r2.Vec) Reflection2 {
	r := NewReflection2(normal)
	n := r2.Unit(normal)
	r.t = r2.Scale(2*r2.Dot(n, point), n)
	return r
}

// Matrix returns the linear part of the reflection.
func (r Reflection2) Matrix() Mat2 { return r.m }

// TransformPoint reflects p across the line.
func (r Reflection2) TransformPoint(p r2.Vec) r2.Vec { return r2.Add(r.m.MulVec(p), r.t) }

// TransformVector reflects the direction v.
func (r Reflection2) TransformVector(v r2.Vec) r2.Vec { return r.m.MulVec(v) }

// ToTransform returns the reflection as a generic 2D transform.
func (r Reflection2) ToTransform() Transform2 {
	return Transform2{m: affineMat3(r.m, r.t)}
}

// Reflection3 mirrors 3D space across a plane. The linear part is the
// Householder matrix I - 2·n·nᵀ of the plane's unit normal n, which is
// its own inverse and has determinant -1. Reflection3 has no dedicated
// inverse or composition; convert it with ToTransform for those.
// Reflection3 must be built with one of its constructors.
type Reflection3 struct {
	m Mat3
	t r3.Vec
}

// NewReflection3 returns the reflection across the plane through the
// origin with the given normal. The normal is normalized.
// A zero normal yields NaNs.
func NewReflection3(normal r3.Vec) Reflection3 {
	n := r3.Unit(normal)
	return Reflection3{m: mat3(
		1-2*n.X*n.X, -2*n.X*n.Y, -2*n.X*n.Z,
		-2*n.X*n.Y, 1-2*n.Y*n.Y, -2*n.Y*n.Z,
		-2*n.X*n.Z, -2*n.Y*n.Z, 1-2*n.Z*n.Z,
	)}
}

// Reflection3About returns the reflection across the plane through point
// with the given normal.
func Reflection3About(normal, point r3.Vec) Reflection3 {
	r := NewReflection3(normal)
	n := r3.Unit(normal)
	r.t = r3.Scale(2*r3.Dot(n, point), n)
	return r
}

// Matrix returns the linear part of the reflection.
func (r Reflection3) Matrix() Mat3 { return r.m }

// TransformPoint reflects p across the plane.
func (r Reflection3) TransformPoint(p r3.Vec) r3.Vec { return r3.Add(r.m.MulVec(p), r.t) }

// TransformVector reflects the direction v.
func (r Reflection3) TransformVector(v r3.Vec) r3.Vec { return r.m.MulVec(v) }

// ToTransform returns the reflection as a generic 3D transform.
func (r Reflection3) ToTransform() Transform3 {
	return Transform3{m: affineMat4(r.m, r.t)}
}
