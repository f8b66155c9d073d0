package pipeline

import (
	"fmt"

	"github.com/soypat/affine"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Steps2 returns the transformations of a 2D pipeline in application order.
func (c *Config) Steps2() ([]affine.Affine2, error) {
	if c.Dim != 2 {
		return nil, fmt.Errorf("building 2D transform from dim=%d pipeline: %w", c.Dim, ErrDimension)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ts := make([]affine.Affine2, len(c.Steps))
	for i, s := range c.Steps {
		ts[i] = s.affine2()
	}
	return ts, nil
}

// Steps3 returns the transformations of a 3D pipeline in application order.
func (c *Config) Steps3() ([]affine.Affine3, error) {
	if c.Dim != 3 {
		return nil, fmt.Errorf("building 3D transform from dim=%d pipeline: %w", c.Dim, ErrDimension)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ts := make([]affine.Affine3, len(c.Steps))
	for i, s := range c.Steps {
		ts[i] = s.affine3()
	}
	return ts, nil
}

// Build2 composes a 2D pipeline into a single transform. An empty
// pipeline builds the identity.
func (c *Config) Build2() (affine.Transform2, error) {
	ts, err := c.Steps2()
	if err != nil {
		return affine.Transform2{}, err
	}
	reverse(ts)
	return affine.Compose2(ts...), nil
}

// Build3 composes a 3D pipeline into a single transform. An empty
// pipeline builds the identity.
func (c *Config) Build3() (affine.Transform3, error) {
	ts, err := c.Steps3()
	if err != nil {
		return affine.Transform3{}, err
	}
	reverse(ts)
	return affine.Compose3(ts...), nil
}

// Points2 returns the pipeline's points as 2D vectors.
func (c *Config) Points2() []r2.Vec {
	ps := make([]r2.Vec, len(c.Points))
	for i, p := range c.Points {
		ps[i] = r2v(p)
	}
	return ps
}

// Points3 returns the pipeline's points as 3D vectors.
func (c *Config) Points3() []r3.Vec {
	ps := make([]r3.Vec, len(c.Points))
	for i, p := range c.Points {
		ps[i] = r3v(p)
	}
	return ps
}

func (s Step) affine2() affine.Affine2 {
	switch s.Op {
	case OpTranslate:
		return affine.NewTranslation2(r2v(s.Vector))
	case OpRotate:
		return affine.NewRotation2(affine.DtoR(s.Angle))
	case OpScale:
		if len(s.Factors) == 1 {
			return affine.UniformScale2(s.Factors[0])
		}
		return affine.NewScale2(s.Factors[0], s.Factors[1])
	case OpShear:
		if axis, _ := shearAxis(s.Along, 2); axis == 0 {
			return affine.Shear2X(s.Factors[0])
		}
		return affine.Shear2Y(s.Factors[0])
	case OpReflect:
		if s.Point != nil {
			return affine.Reflection2About(r2v(s.Normal), r2v(s.Point))
		}
		return affine.NewReflection2(r2v(s.Normal))
	case OpIsometry:
		return affine.Isometry2FromAngle(r2v(s.Vector), affine.DtoR(s.Angle))
	case OpSimilarity:
		return affine.Similarity2FromAngle(r2v(s.Vector), affine.DtoR(s.Angle), s.Scale)
	}
	panic("unvalidated 2D step " + s.Op)
}

func (s Step) affine3() affine.Affine3 {
	switch s.Op {
	case OpTranslate:
		return affine.NewTranslation3(r3v(s.Vector))
	case OpRotate:
		return affine.NewRotation3(r3v(s.Axis), affine.DtoR(s.Angle))
	case OpScale:
		if len(s.Factors) == 1 {
			return affine.UniformScale3(s.Factors[0])
		}
		return affine.NewScale3(s.Factors[0], s.Factors[1], s.Factors[2])
	case OpShear:
		a, b := s.Factors[0], s.Factors[1]
		switch axis, _ := shearAxis(s.Along, 3); axis {
		case 0:
			return affine.Shear3X(a, b)
		case 1:
			return affine.Shear3Y(a, b)
		default:
			return affine.Shear3Z(a, b)
		}
	case OpReflect:
		if s.Point != nil {
			return affine.Reflection3About(r3v(s.Normal), r3v(s.Point))
		}
		return affine.NewReflection3(r3v(s.Normal))
	case OpIsometry:
		return affine.Isometry3FromAxisAngle(r3v(s.Vector), r3v(s.Axis), affine.DtoR(s.Angle))
	case OpSimilarity:
		return affine.Similarity3FromAxisAngle(r3v(s.Vector), r3v(s.Axis), affine.DtoR(s.Angle), s.Scale)
	case OpLookAt:
		return affine.Isometry3LookAtRH(r3v(s.Eye), r3v(s.Target), r3v(s.Up))
	}
	panic("unvalidated 3D step " + s.Op)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func r2v(v []float64) r2.Vec { return r2.Vec{X: v[0], Y: v[1]} }

func r3v(v []float64) r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }
