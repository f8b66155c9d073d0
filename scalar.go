package affine

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field is the set of scalar types closed under +, -, * and ordered.
// Division is only exact for the floating point members.
type Field interface {
	constraints.Integer | constraints.Float
}

// Signed is a Field whose members can be negated.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Real is a Signed field with square roots and trigonometry,
// that is, the floating point types.
type Real interface {
	constraints.Float
}

// Tolerance configures approximate floating point comparisons.
//
// Abs is the absolute tolerance and is always honoured. If Rel is non-zero
// numbers within a relative tolerance of Rel are also considered equal.
// If ULP is non-zero numbers within ULP units in the last place of
// each other are also considered equal.
type Tolerance struct {
	Abs float64
	Rel float64
	ULP uint
}

// DefaultTolerance is an absolute tolerance suited for values of order one.
var DefaultTolerance = Tolerance{Abs: 1e-12}

// AbsTol returns an absolute difference Tolerance.
func AbsTol(eps float64) Tolerance { return Tolerance{Abs: eps} }

// RelTol returns a Tolerance that accepts values within an absolute
// tolerance eps or a relative tolerance rel.
func RelTol(eps, rel float64) Tolerance { return Tolerance{Abs: eps, Rel: rel} }

// ULPTol returns a Tolerance that accepts values within an absolute
// tolerance eps or within ulps units in the last place.
func ULPTol(eps float64, ulps uint) Tolerance { return Tolerance{Abs: eps, ULP: ulps} }

// Equal reports whether a and b are equal within the tolerance.
func (tol Tolerance) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if scalar.EqualWithinAbs(a, b, tol.Abs) {
		return true
	}
	if tol.Rel > 0 && scalar.EqualWithinAbsOrRel(a, b, tol.Abs, tol.Rel) {
		return true
	}
	return tol.ULP > 0 && scalar.EqualWithinULP(a, b, tol.ULP)
}

// equalSlices is the componentwise Equal of two equal length slices.
func (tol Tolerance) equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		panic("length mismatch")
	}
	for i := range a {
		if !tol.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (tol Tolerance) equalR2(a, b r2.Vec) bool {
	return tol.Equal(a.X, b.X) && tol.Equal(a.Y, b.Y)
}

func (tol Tolerance) equalR3(a, b r3.Vec) bool {
	return tol.Equal(a.X, b.X) && tol.Equal(a.Y, b.Y) && tol.Equal(a.Z, b.Z)
}

// factor is a multiplicative factor whose zero value is one. The factor
// is stored as given so small magnitudes keep their full precision.
type factor struct {
	v   float64
	set bool
}

func newFactor(v float64) factor {
	if v == 1 {
		return factor{}
	}
	return factor{v: v, set: true}
}

func (f factor) get() float64 {
	if !f.set {
		return 1
	}
	return f.v
}
