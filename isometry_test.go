package affine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIsometry3InverseRoundTrip(t *testing.T) {
	rng := newRNG()
	tol := AbsTol(1e-10)
	for i := 0; i < 100; i++ {
		iso := randomIsometry3(rng)
		p := randomVec3(rng, 10)
		if got := iso.Inverse().TransformPoint(iso.TransformPoint(p)); !tol.equalR3(got, p) {
			t.Errorf("inverse round trip: got %v, want %v", got, p)
		}
		if got := iso.InverseTransformPoint(iso.TransformPoint(p)); !tol.equalR3(got, p) {
			t.Errorf("InverseTransformPoint round trip: got %v, want %v", got, p)
		}
		if got := iso.InverseTransformVector(iso.TransformVector(p)); !tol.equalR3(got, p) {
			t.Errorf("InverseTransformVector round trip: got %v, want %v", got, p)
		}
		inv := iso
		inv.Invert()
		if inv != iso.Inverse() {
			t.Error("Invert and Inverse disagree")
		}
		if !iso.Mul(inv).EqualWithin(Isometry3{}, tol) {
			t.Errorf("isometry times inverse is not identity: %v", iso.Mul(inv))
		}
	}
}

func TestIsometry3InverseIsNotPartwise(t *testing.T) {
	iso := Isometry3FromAxisAngle(r3.Vec{X: 1}, r3.Vec{Z: 1}, math.Pi/2)
	inv := iso.Inverse()
	// Rᵀ about Z by -90° applied to -t = (-1,0,0) gives (0,1,0).
	if got := inv.Translation().Vector(); !AbsTol(1e-15).equalR3(got, r3.Vec{Y: 1}) {
		t.Errorf("inverse translation: got %v", got)
	}
}

func TestIsometry3Mul(t *testing.T) {
	rng := newRNG()
	tol := AbsTol(1e-10)
	for i := 0; i < 100; i++ {
		a, b, c := randomIsometry3(rng), randomIsometry3(rng), randomIsometry3(rng)
		if !a.Mul(b).Mul(c).EqualWithin(a.Mul(b.Mul(c)), tol) {
			t.Fatal("isometry composition not associative")
		}
		if !a.Mul(b).Matrix().EqualWithin(a.Matrix().Mul(b.Matrix()), tol) {
			t.Fatal("isometry composition differs from matrix product")
		}
		p := randomVec3(rng, 10)
		if got, want := a.Mul(b).TransformPoint(p), a.TransformPoint(b.TransformPoint(p)); !tol.equalR3(got, want) {
			t.Errorf("composition applies b first: got %v, want %v", got, want)
		}
		if got, want := a.TransformVector(p), a.Rotation().RotateVector(p); got != want {
			t.Errorf("translation affected vector: got %v, want %v", got, want)
		}
	}
}

func TestIsometryIdentityExact(t *testing.T) {
	rng := newRNG()
	for i := 0; i < 100; i++ {
		p3 := randomVec3(rng, 1e3)
		if got := (Isometry3{}).TransformPoint(p3); got != p3 {
			t.Errorf("identity changed point: got %v, want %v", got, p3)
		}
		p2 := randomVec2(rng, 1e3)
		if got := (Isometry2{}).TransformPoint(p2); got != p2 {
			t.Errorf("identity changed point: got %v, want %v", got, p2)
		}
	}
}

func TestIsometry2(t *testing.T) {
	rng := newRNG()
	tol := AbsTol(1e-10)
	for i := 0; i < 100; i++ {
		a, b, c := randomIsometry2(rng), randomIsometry2(rng), randomIsometry2(rng)
		p := randomVec2(rng, 10)
		if got := a.Inverse().TransformPoint(a.TransformPoint(p)); !tol.equalR2(got, p) {
			t.Errorf("inverse round trip: got %v, want %v", got, p)
		}
		if got := a.InverseTransformPoint(a.TransformPoint(p)); !tol.equalR2(got, p) {
			t.Errorf("InverseTransformPoint round trip: got %v, want %v", got, p)
		}
		if !a.Mul(b).Mul(c).EqualWithin(a.Mul(b.Mul(c)), tol) {
			t.Fatal("isometry composition not associative")
		}
		if !a.Mul(b).Matrix().EqualWithin(a.Matrix().Mul(b.Matrix()), tol) {
			t.Fatal("isometry composition differs from matrix product")
		}
	}
	iso := Isometry2FromAngle(r2.Vec{X: 1, Y: 2}, math.Pi/2)
	if got := iso.TransformPoint(r2.Vec{X: 1}); !tol.equalR2(got, r2.Vec{X: 1, Y: 3}) {
		t.Errorf("rotate then translate: got %v", got)
	}
	if got := iso.TransformVector(r2.Vec{X: 1}); !tol.equalR2(got, r2.Vec{Y: 1}) {
		t.Errorf("vector: got %v", got)
	}
}

func TestIsometry3LookTo(t *testing.T) {
	const tol = 1e-10
	eyes := []r3.Vec{{}, {X: 1, Y: 2, Z: 3}, {X: -5, Y: 0.5, Z: 10}}
	dirs := []r3.Vec{{Z: 1}, {X: 4, Y: -2, Z: 1}, {X: -1, Y: 3, Z: -2}}
	up := r3.Vec{Y: 1}
	for _, eye := range eyes {
		for _, dir := range dirs {
			n := r3.Unit(dir)
			for _, c := range []struct {
				name    string
				view    Isometry3
				inverse Isometry3
				wantDir r3.Vec
			}{
				{"LH", Isometry3LookToLH(eye, dir, up), Isometry3LookToLHInv(eye, dir, up), r3.Vec{Z: 1}},
				{"RH", Isometry3LookToRH(eye, dir, up), Isometry3LookToRHInv(eye, dir, up), r3.Vec{Z: -1}},
				{"LHAt", Isometry3LookAtLH(eye, r3.Add(eye, dir), up), Isometry3LookAtLHInv(eye, r3.Add(eye, dir), up), r3.Vec{Z: 1}},
				{"RHAt", Isometry3LookAtRH(eye, r3.Add(eye, dir), up), Isometry3LookAtRHInv(eye, r3.Add(eye, dir), up), r3.Vec{Z: -1}},
			} {
				if got := c.view.TransformPoint(eye); !AbsTol(tol).equalR3(got, r3.Vec{}) {
					t.Errorf("%s: eye %v mapped to %v", c.name, eye, got)
				}
				if got := c.view.TransformVector(n); !AbsTol(tol).equalR3(got, c.wantDir) {
					t.Errorf("%s: direction %v mapped to %v, want %v", c.name, n, got, c.wantDir)
				}
				if got := c.view.TransformVector(up); got.Y <= 0 || math.Abs(got.X) > tol {
					t.Errorf("%s: up mapped to %v", c.name, got)
				}
				if !c.inverse.EqualWithin(c.view.Inverse(), AbsTol(tol)) {
					t.Errorf("%s: inverse constructor mismatch", c.name)
				}
				if got := c.inverse.TransformPoint(r3.Vec{}); !AbsTol(tol).equalR3(got, eye) {
					t.Errorf("%s: inverse maps origin to %v, want %v", c.name, got, eye)
				}
			}
			want := mgl64.LookAtV(mglVec(eye), mglVec(r3.Add(eye, dir)), mglVec(up))
			if !equalMgl(Isometry3LookAtRH(eye, r3.Add(eye, dir), up).Matrix(), want, AbsTol(tol)) {
				t.Errorf("LookAtRH differs from mathgl LookAtV for eye=%v dir=%v", eye, dir)
			}
		}
	}
}

func TestIsometry3LookToDegenerate(t *testing.T) {
	iso := Isometry3LookToRH(r3.Vec{}, r3.Vec{Y: 2}, r3.Vec{Y: 1})
	if got := iso.TransformVector(r3.Vec{X: 1}); !math.IsNaN(got.X) {
		t.Errorf("direction parallel to up should yield NaN, got %v", got)
	}
}
