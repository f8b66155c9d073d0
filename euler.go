package affine

import (
	"fmt"
	"math"
)

// EulerAngles describes a 3D rotation as successive rotations in radians
// about the X, Y and Z axes. The equivalent rotation matrix is
//
//	R = Rx(X)·Ry(Y)·Rz(Z)
//
// so applied to a vector the Z rotation acts first.
type EulerAngles struct {
	X, Y, Z float64
}

// Rotation3FromEuler returns the rotation described by the Euler angles e.
func Rotation3FromEuler(e EulerAngles) Rotation3 {
	sx, cx := math.Sincos(e.X)
	sy, cy := math.Sincos(e.Y)
	sz, cz := math.Sincos(e.Z)
	return Rotation3{m: mat3(
		cy*cz, -cy*sz, sy,
		cx*sz+sx*sy*cz, cx*cz-sx*sy*sz, -sx*cy,
		sx*sz-cx*sy*cz, sx*cz+cx*sy*sz, cx*cy,
	)}
}

// Euler returns Euler angles describing the rotation such that
// Rotation3FromEuler(r.Euler()) equals r. The Y angle is in [-pi/2, pi/2].
// At gimbal lock (Y = ±pi/2) the Z angle is set to zero.
func (r Rotation3) Euler() EulerAngles {
	m := r.m.Array()
	sy := Clamp(m[2], -1, 1)
	y := math.Asin(sy)
	if math.Abs(sy) > 1-epsilon {
		// Only X±Z is observable. Attribute it all to X.
		return EulerAngles{X: math.Atan2(m[3]*sy, m[4]), Y: y}
	}
	return EulerAngles{
		X: math.Atan2(-m[5], m[8]),
		Y: y,
		Z: math.Atan2(-m[1], m[0]),
	}
}

func (e EulerAngles) String() string {
	return fmt.Sprintf("EulerAngles [x=%v, y=%v, z=%v]", e.X, e.Y, e.Z)
}
