package affine

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSimilarity2AffineMatrix(t *testing.T) {
	s := NewSimilarity2(NewTranslation2(r2.Vec{X: 2, Y: 3}), NewRotation2(DtoR(72)), 2)
	sin, cos := math.Sincos(DtoR(72))
	want := NewMat3([]float64{
		2 * cos, -2 * sin, 2,
		2 * sin, 2 * cos, 3,
		0, 0, 1,
	})
	if got := s.Matrix(); !got.EqualWithin(want, AbsTol(1e-15)) {
		t.Errorf("affine matrix mismatch.\ngot  %v\nwant %v", got.Array(), want.Array())
	}
}

func TestSimilarity3AffineMatrix(t *testing.T) {
	r := NewRotation3(r3.Vec{X: 1, Y: 2, Z: 3}, 0.8)
	s := NewSimilarity3(NewTranslation3(r3.Vec{X: 4, Y: 5, Z: 6}), r, 3)
	m := s.Matrix()
	rm := r.Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !AbsTol(1e-15).Equal(m.At(i, j), 3*rm.At(i, j)) {
				t.Errorf("block element (%d,%d): got %v, want %v", i, j, m.At(i, j), 3*rm.At(i, j))
			}
		}
		if m.At(3, i) != 0 {
			t.Errorf("last row element %d not zero", i)
		}
	}
	if m.At(3, 3) != 1 || m.At(0, 3) != 4 || m.At(1, 3) != 5 || m.At(2, 3) != 6 {
		t.Errorf("bad homogeneous column %v", m.Array())
	}
}

func TestSimilarity2FromScaleExact(t *testing.T) {
	got := Similarity2FromScale(10).TransformVector(r2.Vec{X: 1, Y: 2})
	if got != (r2.Vec{X: 10, Y: 20}) {
		t.Errorf("got %v, want (10,20)", got)
	}
	got3 := Similarity3FromScale(10).TransformVector(r3.Vec{X: 1, Y: 2, Z: 3})
	if got3 != (r3.Vec{X: 10, Y: 20, Z: 30}) {
		t.Errorf("got %v, want (10,20,30)", got3)
	}
}

func TestSimilarityIdentityExact(t *testing.T) {
	rng := newRNG()
	for i := 0; i < 100; i++ {
		p3 := randomVec3(rng, 1e3)
		if got := (Similarity3{}).TransformPoint(p3); got != p3 {
			t.Errorf("identity changed point: got %v, want %v", got, p3)
		}
		p2 := randomVec2(rng, 1e3)
		if got := (Similarity2{}).TransformPoint(p2); got != p2 {
			t.Errorf("identity changed point: got %v, want %v", got, p2)
		}
	}
}

func TestSimilarity3Properties(t *testing.T) {
	rng := newRNG()
	tol := RelTol(1e-9, 1e-9)
	for i := 0; i < 100; i++ {
		a, b, c := randomSimilarity3(rng), randomSimilarity3(rng), randomSimilarity3(rng)
		p := randomVec3(rng, 10)
		if got := a.Inverse().TransformPoint(a.TransformPoint(p)); !tol.equalR3(got, p) {
			t.Errorf("inverse round trip: got %v, want %v", got, p)
		}
		if got := a.InverseTransformPoint(a.TransformPoint(p)); !tol.equalR3(got, p) {
			t.Errorf("InverseTransformPoint round trip: got %v, want %v", got, p)
		}
		if got := a.InverseTransformVector(a.TransformVector(p)); !tol.equalR3(got, p) {
			t.Errorf("InverseTransformVector round trip: got %v, want %v", got, p)
		}
		want := r3.Scale(a.Scale(), a.Rotation().RotateVector(p))
		if got := a.TransformVector(p); !tol.equalR3(got, want) {
			t.Errorf("vector law: got %v, want %v", got, want)
		}
		if !a.Mul(b).Mul(c).EqualWithin(a.Mul(b.Mul(c)), tol) {
			t.Fatal("similarity composition not associative")
		}
		if !a.Mul(b).Matrix().EqualWithin(a.Matrix().Mul(b.Matrix()), tol) {
			t.Fatal("similarity composition differs from matrix product")
		}
		if got, want := a.Mul(b).TransformPoint(p), a.TransformPoint(b.TransformPoint(p)); !tol.equalR3(got, want) {
			t.Errorf("composition applies b first: got %v, want %v", got, want)
		}
		iso := b.Isometry()
		if !a.MulIsometry(iso).EqualWithin(a.Mul(Similarity3FromIsometry(iso, 1)), tol) {
			t.Error("MulIsometry mismatch")
		}
		inv := a
		inv.Invert()
		if !inv.Mul(a).EqualWithin(Similarity3{}, AbsTol(1e-9)) {
			t.Errorf("inverse times similarity is not identity: %v", inv.Mul(a))
		}
		if !a.Inverse().ToTransform().EqualWithin(mustInverse3(t, a.ToTransform()), tol) {
			t.Error("similarity inverse differs from generic inverse")
		}
	}
}

func TestSimilarity2Properties(t *testing.T) {
	rng := newRNG()
	tol := RelTol(1e-9, 1e-9)
	for i := 0; i < 100; i++ {
		a, b, c := randomSimilarity2(rng), randomSimilarity2(rng), randomSimilarity2(rng)
		p := randomVec2(rng, 10)
		if got := a.Inverse().TransformPoint(a.TransformPoint(p)); !tol.equalR2(got, p) {
			t.Errorf("inverse round trip: got %v, want %v", got, p)
		}
		if got := a.InverseTransformPoint(a.TransformPoint(p)); !tol.equalR2(got, p) {
			t.Errorf("InverseTransformPoint round trip: got %v, want %v", got, p)
		}
		want := r2.Scale(a.Scale(), a.Rotation().RotateVector(p))
		if got := a.TransformVector(p); !tol.equalR2(got, want) {
			t.Errorf("vector law: got %v, want %v", got, want)
		}
		if !a.Mul(b).Mul(c).EqualWithin(a.Mul(b.Mul(c)), tol) {
			t.Fatal("similarity composition not associative")
		}
		if !a.Mul(b).Matrix().EqualWithin(a.Matrix().Mul(b.Matrix()), tol) {
			t.Fatal("similarity composition differs from matrix product")
		}
		if !a.MulIsometry(b.Isometry()).EqualWithin(a.Mul(Similarity2FromIsometry(b.Isometry(), 1)), tol) {
			t.Error("MulIsometry mismatch")
		}
	}
}

func TestSimilarityInverseOrder(t *testing.T) {
	// Scale 2, quarter turn about Z, translate by X. Inverting the parts
	// independently would give the translation (-1,0,0).
	s := Similarity3FromAxisAngle(r3.Vec{X: 1}, r3.Vec{Z: 1}, math.Pi/2, 2)
	inv := s.Inverse()
	if !AbsTol(1e-15).Equal(inv.Scale(), 0.5) {
		t.Errorf("inverse scale %v", inv.Scale())
	}
	if got := inv.Translation().Vector(); !AbsTol(1e-15).equalR3(got, r3.Vec{Y: 0.5}) {
		t.Errorf("inverse translation: got %v, want (0,0.5,0)", got)
	}
}

func TestSimilarity3LookAt(t *testing.T) {
	eye, target, up := r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: -1, Z: 4}, r3.Vec{Z: 1}
	pairs := []struct {
		s   Similarity3
		iso Isometry3
	}{
		{Similarity3LookAtLH(eye, target, up), Isometry3LookAtLH(eye, target, up)},
		{Similarity3LookAtRH(eye, target, up), Isometry3LookAtRH(eye, target, up)},
		{Similarity3LookToLH(eye, target, up), Isometry3LookToLH(eye, target, up)},
		{Similarity3LookToRH(eye, target, up), Isometry3LookToRH(eye, target, up)},
		{Similarity3LookAtLHInv(eye, target, up), Isometry3LookAtLHInv(eye, target, up)},
		{Similarity3LookAtRHInv(eye, target, up), Isometry3LookAtRHInv(eye, target, up)},
		{Similarity3LookToLHInv(eye, target, up), Isometry3LookToLHInv(eye, target, up)},
		{Similarity3LookToRHInv(eye, target, up), Isometry3LookToRHInv(eye, target, up)},
	}
	for i, p := range pairs {
		if p.s.Scale() != 1 || p.s.Isometry() != p.iso {
			t.Errorf("look constructor %d: similarity %v differs from isometry %v", i, p.s, p.iso)
		}
	}
}

func TestSimilarityString(t *testing.T) {
	s := Similarity2FromAngle(r2.Vec{X: 1, Y: 2}, 0, 2)
	const want = "Similarity2 [scale=2, rotation=0, translation={1 2}]"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Similarity3{}).String(); !strings.HasPrefix(got, "Similarity3 [scale=1, rotation=") {
		t.Errorf("String() = %q", got)
	}
}

func mustInverse3(t *testing.T, tr Transform3) Transform3 {
	t.Helper()
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("transform not invertible")
	}
	return inv
}

func TestSimilaritySmallScale(t *testing.T) {
	tol := RelTol(0, 1e-12)
	p2 := r2.Vec{X: 3, Y: 4}
	p3 := r3.Vec{X: 3, Y: 4, Z: -5}
	for _, k := range []float64{1e-10, 1e-17} {
		s2 := NewSimilarity2(Translation2{}, NewRotation2(0.3), k)
		if s2.Scale() != k {
			t.Errorf("Similarity2 scale: got %g, want %g", s2.Scale(), k)
		}
		if got := Similarity2FromScale(k).Scale(); got != k {
			t.Errorf("Similarity2FromScale(%g).Scale() = %g", k, got)
		}
		got2 := s2.Inverse().TransformPoint(s2.TransformPoint(p2))
		if !tol.Equal(got2.X, p2.X) || !tol.Equal(got2.Y, p2.Y) {
			t.Errorf("scale %g: 2D round trip got %v, want %v", k, got2, p2)
		}
		if got := s2.Inverse().Scale(); !tol.Equal(got, 1/k) {
			t.Errorf("scale %g: inverse scale %g", k, got)
		}

		s3 := NewSimilarity3(Translation3{}, NewRotation3(r3.Vec{X: 1, Y: 2, Z: 3}, 0.8), k)
		if s3.Scale() != k {
			t.Errorf("Similarity3 scale: got %g, want %g", s3.Scale(), k)
		}
		got3 := s3.Inverse().TransformPoint(s3.TransformPoint(p3))
		if !tol.Equal(got3.X, p3.X) || !tol.Equal(got3.Y, p3.Y) || !tol.Equal(got3.Z, p3.Z) {
			t.Errorf("scale %g: 3D round trip got %v, want %v", k, got3, p3)
		}
		if got := s3.InverseTransformPoint(s3.TransformPoint(p3)); !tol.Equal(got.Z, p3.Z) {
			t.Errorf("scale %g: InverseTransformPoint got %v, want %v", k, got, p3)
		}
		if got := Similarity3FromScale(k).Mul(Similarity3FromScale(1 / k)).Scale(); !tol.Equal(got, 1) {
			t.Errorf("scale %g times its reciprocal: %g", k, got)
		}
	}
}

func TestSimilarity3SmallScaleMatrixInverse(t *testing.T) {
	tol := RelTol(0, 1e-9)
	s := NewSimilarity3(NewTranslation3(r3.Vec{X: 1e-6, Y: -2e-6}), NewRotation3(r3.Vec{X: 1, Y: 1}, 0.4), 1e-6)
	tr := s.ToTransform()
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatalf("transform of scale 1e-6 reported singular, det %g", tr.Matrix().Det())
	}
	// Entries of the inverse are of order 1e6.
	if !inv.EqualWithin(s.Inverse().ToTransform(), RelTol(1e-3, 1e-9)) {
		t.Errorf("matrix inverse differs from similarity inverse:\ngot  %v\nwant %v", inv, s.Inverse().ToTransform())
	}
	p := r3.Vec{X: 3, Y: -4, Z: 5}
	got, ok := tr.InverseTransformPoint(tr.TransformPoint(p))
	if !ok || !tol.Equal(got.X, p.X) || !tol.Equal(got.Y, p.Y) || !tol.Equal(got.Z, p.Z) {
		t.Errorf("round trip: got %v (ok=%v), want %v", got, ok, p)
	}
	if _, ok := Similarity3FromScale(1e-6).ToTransform().Inverse(); !ok {
		t.Error("uniform scale 1e-6 reported singular")
	}
}
