// Package camera builds the projection matrices that map view space to
// OpenGL clip space. View space is right handed: the camera looks down -Z
// with +Y up. Clip space depth is in [-1, 1] after the perspective divide.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/affine"
	"gonum.org/v1/gonum/spatial/r3"
)

// Projection is implemented by every camera projection in this package.
type Projection interface {
	Matrix() affine.Mat4
}

var (
	_ Projection = Perspective{}
	_ Projection = PerspectiveFov{}
	_ Projection = Orthographic{}
)

var (
	// ErrBadClip is returned when the near or far clipping planes are invalid.
	ErrBadClip = errors.New("invalid clipping planes")
	// ErrBadExtent is returned when the view volume has no width or height.
	ErrBadExtent = errors.New("invalid view volume extent")
)

// Perspective is a perspective projection of the view frustum with apex
// at the origin and the given extents on the near plane.
type Perspective struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
}

// Validate checks that p describes a non-degenerate frustum in front of the camera.
func (p Perspective) Validate() error {
	if !(p.Near > 0) || !(p.Far > p.Near) {
		return fmt.Errorf("near=%v far=%v: %w", p.Near, p.Far, ErrBadClip)
	}
	if p.Left == p.Right || p.Bottom == p.Top {
		return fmt.Errorf("left=%v right=%v bottom=%v top=%v: %w", p.Left, p.Right, p.Bottom, p.Top, ErrBadExtent)
	}
	return nil
}

// Matrix returns the frustum matrix in the layout of glFrustum.
func (p Perspective) Matrix() affine.Mat4 {
	rml, tmb, fmn := p.Right-p.Left, p.Top-p.Bottom, p.Far-p.Near
	return affine.NewMat4([]float64{
		2 * p.Near / rml, 0, (p.Right + p.Left) / rml, 0,
		0, 2 * p.Near / tmb, (p.Top + p.Bottom) / tmb, 0,
		0, 0, -(p.Far + p.Near) / fmn, -2 * p.Far * p.Near / fmn,
		0, 0, -1, 0,
	})
}

// ProjectPoint maps the view space point v to normalized device coordinates.
func (p Perspective) ProjectPoint(v r3.Vec) r3.Vec { return project(p, v) }

// UnprojectPoint maps the normalized device coordinates v back to view
// space. ok is false if the projection is degenerate.
func (p Perspective) UnprojectPoint(v r3.Vec) (_ r3.Vec, ok bool) { return unproject(p, v) }

// PerspectiveFov is a symmetric perspective projection described by its
// vertical field of view in radians and the width over height aspect ratio.
type PerspectiveFov struct {
	Fovy, Aspect float64
	Near, Far    float64
}

// Frustum returns the equivalent frustum description of p.
func (p PerspectiveFov) Frustum() Perspective {
	top := p.Near * math.Tan(p.Fovy/2)
	right := p.Aspect * top
	return Perspective{
		Left: -right, Right: right,
		Bottom: -top, Top: top,
		Near: p.Near, Far: p.Far,
	}
}

// Validate checks that p describes a non-degenerate frustum in front of the camera.
func (p PerspectiveFov) Validate() error {
	if !(p.Fovy > 0 && p.Fovy < math.Pi) || !(p.Aspect > 0) {
		return fmt.Errorf("fovy=%v aspect=%v: %w", p.Fovy, p.Aspect, ErrBadExtent)
	}
	return p.Frustum().Validate()
}

// Matrix returns the projection matrix in the layout of gluPerspective.
func (p PerspectiveFov) Matrix() affine.Mat4 {
	f := 1 / math.Tan(p.Fovy/2)
	nmf := p.Near - p.Far
	return affine.NewMat4([]float64{
		f / p.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (p.Far + p.Near) / nmf, 2 * p.Far * p.Near / nmf,
		0, 0, -1, 0,
	})
}

// ProjectPoint maps the view space point v to normalized device coordinates.
func (p PerspectiveFov) ProjectPoint(v r3.Vec) r3.Vec { return project(p, v) }

// UnprojectPoint maps the normalized device coordinates v back to view
// space. ok is false if the projection is degenerate.
func (p PerspectiveFov) UnprojectPoint(v r3.Vec) (_ r3.Vec, ok bool) { return unproject(p, v) }

// Orthographic is a parallel projection of the axis aligned view box.
type Orthographic struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
}

// Validate checks that the view box has a non-zero size along every axis.
func (o Orthographic) Validate() error {
	if o.Near == o.Far {
		return fmt.Errorf("near=%v far=%v: %w", o.Near, o.Far, ErrBadClip)
	}
	if o.Left == o.Right || o.Bottom == o.Top {
		return fmt.Errorf("left=%v right=%v bottom=%v top=%v: %w", o.Left, o.Right, o.Bottom, o.Top, ErrBadExtent)
	}
	return nil
}

// Matrix returns the projection matrix in the layout of glOrtho.
func (o Orthographic) Matrix() affine.Mat4 {
	rml, tmb, fmn := o.Right-o.Left, o.Top-o.Bottom, o.Far-o.Near
	return affine.NewMat4([]float64{
		2 / rml, 0, 0, -(o.Right + o.Left) / rml,
		0, 2 / tmb, 0, -(o.Top + o.Bottom) / tmb,
		0, 0, -2 / fmn, -(o.Far + o.Near) / fmn,
		0, 0, 0, 1,
	})
}

// ProjectPoint maps the view space point v to normalized device coordinates.
func (o Orthographic) ProjectPoint(v r3.Vec) r3.Vec { return project(o, v) }

// UnprojectPoint maps the normalized device coordinates v back to view
// space. ok is false if the projection is degenerate.
func (o Orthographic) UnprojectPoint(v r3.Vec) (_ r3.Vec, ok bool) { return unproject(o, v) }

// ViewProjection returns the transform taking world space points to
// normalized device coordinates for a camera placed by the world-to-view
// isometry view.
func ViewProjection(proj Projection, view affine.Isometry3) affine.Transform3 {
	return affine.NewTransform3(proj.Matrix()).Mul(view.ToTransform())
}

// InView reports whether the normalized device coordinates v lie inside
// the clip volume.
func InView(v r3.Vec) bool {
	return math.Abs(v.X) <= 1 && math.Abs(v.Y) <= 1 && math.Abs(v.Z) <= 1
}

func project(p Projection, v r3.Vec) r3.Vec {
	return p.Matrix().MulPos(v)
}

func unproject(p Projection, v r3.Vec) (r3.Vec, bool) {
	inv, ok := p.Matrix().Inverse()
	if !ok {
		return r3.Vec{}, false
	}
	return inv.MulPos(v), true
}
