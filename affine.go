// Package affine implements the affine transformation algebra of 2D and
// 3D space used in computer graphics: translations, rotations, scales,
// shears, reflections, isometries, similarities and generic homogeneous
// transforms.
//
// Points and vectors share the gonum spatial types r2.Vec and r3.Vec and
// are told apart by the method applied to them: TransformPoint honours
// translation while TransformVector does not.
//
// All types are small values and the zero value of each is the identity.
// Composition is written a.Mul(b), which applies b first and then a.
package affine

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Affine2 is implemented by every 2D transformation.
type Affine2 interface {
	TransformPoint(r2.Vec) r2.Vec
	TransformVector(r2.Vec) r2.Vec
	ToTransform() Transform2
}

// Affine3 is implemented by every 3D transformation.
type Affine3 interface {
	TransformPoint(r3.Vec) r3.Vec
	TransformVector(r3.Vec) r3.Vec
	ToTransform() Transform3
}

var (
	_ Affine2 = Rotation2{}
	_ Affine2 = Translation2{}
	_ Affine2 = Scale2{}
	_ Affine2 = Shear2{}
	_ Affine2 = Reflection2{}
	_ Affine2 = Isometry2{}
	_ Affine2 = Similarity2{}
	_ Affine2 = Transform2{}

	_ Affine3 = Rotation3{}
	_ Affine3 = Translation3{}
	_ Affine3 = Scale3{}
	_ Affine3 = Shear3{}
	_ Affine3 = Reflection3{}
	_ Affine3 = Isometry3{}
	_ Affine3 = Similarity3{}
	_ Affine3 = Transform3{}
)

// Compose2 returns the product ts[0]·ts[1]·…·ts[n-1] as a generic transform.
// The last transformation is applied first. Compose2 of no arguments
// is the identity.
func Compose2(ts ...Affine2) Transform2 {
	var t Transform2
	for _, a := range ts {
		t = t.Mul(a.ToTransform())
	}
	return t
}

// Compose3 returns the product ts[0]·ts[1]·…·ts[n-1] as a generic transform.
// The last transformation is applied first. Compose3 of no arguments
// is the identity.
func Compose3(ts ...Affine3) Transform3 {
	var t Transform3
	for _, a := range ts {
		t = t.Mul(a.ToTransform())
	}
	return t
}
