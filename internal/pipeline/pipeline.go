// Package pipeline loads transformation pipelines from YAML documents and
// composes them into a single affine transform.
//
// A pipeline lists its steps in the order they are applied to points:
//
//	dim: 3
//	steps:
//	  - op: scale
//	    factors: [2]
//	  - op: rotate
//	    axis: [0, 0, 1]
//	    angle: 90
//	  - op: translate
//	    vector: [1, 0, 0]
//
// Angles are given in degrees.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/soypat/affine/internal/d2"
	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpTranslate  = "translate"
	OpRotate     = "rotate"
	OpScale      = "scale"
	OpShear      = "shear"
	OpReflect    = "reflect"
	OpIsometry   = "isometry"
	OpSimilarity = "similarity"
	OpLookAt     = "look_at"
)

var (
	// ErrInvalidStep is returned for steps with missing, malformed or
	// degenerate parameters.
	ErrInvalidStep = errors.New("invalid pipeline step")
	// ErrDimension is returned when a pipeline is built in a dimension it
	// was not declared for, or declares an unsupported one.
	ErrDimension = errors.New("unsupported pipeline dimension")
)

// degenerate is the threshold under which axes, normals and look-at bases
// are considered zero.
const degenerate = 1e-12

// Config describes a pipeline of transformations.
type Config struct {
	// Dim is the dimension of the pipeline, 2 or 3.
	Dim   int    `yaml:"dim"`
	Steps []Step `yaml:"steps"`
	// Points optionally lists points the pipeline is applied to.
	Points [][]float64 `yaml:"points,omitempty"`
}

// Step is a single transformation of a pipeline. Which fields are used
// depends on Op.
type Step struct {
	Op string `yaml:"op"`
	// Vector is the translation of translate, isometry and similarity steps.
	Vector []float64 `yaml:"vector,omitempty"`
	// Axis is the rotation axis in 3D pipelines.
	Axis []float64 `yaml:"axis,omitempty"`
	// Angle is the rotation angle in degrees.
	Angle float64 `yaml:"angle,omitempty"`
	// Factors are the scale factors, one per axis or a single uniform one.
	// For shear steps they are the shear factors of the remaining axes.
	Factors []float64 `yaml:"factors,omitempty"`
	// Along names the sheared axis: x, y or z.
	Along string `yaml:"along,omitempty"`
	// Normal and Point define the mirror line or plane of reflect steps.
	Normal []float64 `yaml:"normal,omitempty"`
	Point  []float64 `yaml:"point,omitempty"`
	// Scale is the uniform scale of similarity steps.
	Scale float64 `yaml:"scale,omitempty"`
	// Eye, Target and Up place the camera of look_at steps.
	Eye    []float64 `yaml:"eye,omitempty"`
	Target []float64 `yaml:"target,omitempty"`
	Up     []float64 `yaml:"up,omitempty"`
}

// Load decodes a pipeline from YAML. Unknown fields are rejected.
// The returned pipeline is validated.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding pipeline: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every step of the pipeline and its points.
func (c *Config) Validate() error {
	if c.Dim != 2 && c.Dim != 3 {
		return fmt.Errorf("dim=%d: %w", c.Dim, ErrDimension)
	}
	for i := range c.Steps {
		if err := c.Steps[i].validate(c.Dim); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, c.Steps[i].Op, err)
		}
	}
	for i, p := range c.Points {
		if err := checkVec(p, c.Dim); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

func (s *Step) validate(dim int) error {
	switch s.Op {
	case OpTranslate:
		return checkVec(s.Vector, dim)
	case OpRotate:
		return s.checkRotation(dim)
	case OpScale:
		if len(s.Factors) != 1 && len(s.Factors) != dim {
			return fmt.Errorf("want 1 or %d scale factors, got %d: %w", dim, len(s.Factors), ErrInvalidStep)
		}
		return checkFinite(s.Factors)
	case OpShear:
		if _, err := shearAxis(s.Along, dim); err != nil {
			return err
		}
		if len(s.Factors) != dim-1 {
			return fmt.Errorf("want %d shear factors, got %d: %w", dim-1, len(s.Factors), ErrInvalidStep)
		}
		return checkFinite(s.Factors)
	case OpReflect:
		if err := checkNonZero("normal", s.Normal, dim); err != nil {
			return err
		}
		if s.Point != nil {
			return checkVec(s.Point, dim)
		}
		return nil
	case OpIsometry:
		if err := checkVec(s.Vector, dim); err != nil {
			return err
		}
		return s.checkRotation(dim)
	case OpSimilarity:
		if err := checkVec(s.Vector, dim); err != nil {
			return err
		}
		if s.Scale == 0 || math.IsNaN(s.Scale) || math.IsInf(s.Scale, 0) {
			return fmt.Errorf("similarity scale=%v: %w", s.Scale, ErrInvalidStep)
		}
		return s.checkRotation(dim)
	case OpLookAt:
		if dim != 3 {
			return fmt.Errorf("look_at needs a 3D pipeline: %w", ErrDimension)
		}
		return s.checkLookAt()
	case "":
		return fmt.Errorf("missing op: %w", ErrInvalidStep)
	}
	return fmt.Errorf("unknown op %q: %w", s.Op, ErrInvalidStep)
}

func (s *Step) checkRotation(dim int) error {
	if err := checkFinite([]float64{s.Angle}); err != nil {
		return err
	}
	if dim == 2 {
		if s.Axis != nil {
			return fmt.Errorf("axis given in 2D pipeline: %w", ErrInvalidStep)
		}
		return nil
	}
	return checkNonZero("axis", s.Axis, dim)
}

func (s *Step) checkLookAt() error {
	for _, v := range [][]float64{s.Eye, s.Target} {
		if err := checkVec(v, 3); err != nil {
			return err
		}
	}
	if err := checkNonZero("up", s.Up, 3); err != nil {
		return err
	}
	dir := r3.Sub(r3v(s.Target), r3v(s.Eye))
	up := r3v(s.Up)
	if r3.Norm(dir) < degenerate {
		return fmt.Errorf("eye and target coincide: %w", ErrInvalidStep)
	}
	if r3.Norm(r3.Cross(dir, up)) < degenerate*r3.Norm(dir)*r3.Norm(up) {
		return fmt.Errorf("view direction parallel to up: %w", ErrInvalidStep)
	}
	return nil
}

func shearAxis(along string, dim int) (int, error) {
	switch along {
	case "x":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		if dim == 3 {
			return 2, nil
		}
	}
	return 0, fmt.Errorf("bad shear axis %q for %dD: %w", along, dim, ErrInvalidStep)
}

func checkVec(v []float64, dim int) error {
	if len(v) != dim {
		return fmt.Errorf("want %d components, got %d: %w", dim, len(v), ErrInvalidStep)
	}
	finite := true
	switch dim {
	case 2:
		finite = d2.IsFinite(r2v(v))
	case 3:
		finite = d3.IsFinite(r3v(v))
	}
	if !finite {
		return fmt.Errorf("non-finite vector %v: %w", v, ErrInvalidStep)
	}
	return nil
}

func checkNonZero(name string, v []float64, dim int) error {
	if err := checkVec(v, dim); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var n float64
	for _, x := range v {
		n += x * x
	}
	if math.Sqrt(n) < degenerate {
		return fmt.Errorf("zero %s: %w", name, ErrInvalidStep)
	}
	return nil
}

func checkFinite(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("non-finite value %v: %w", x, ErrInvalidStep)
		}
	}
	return nil
}
