package affine

import (
	"testing"
)

func TestMatZeroValueIsIdentity(t *testing.T) {
	if got := (Mat4{}).Array(); got != [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1} {
		t.Errorf("Mat4 zero value not identity: %v", got)
	}
	if got := (Mat3{}).Array(); got != [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1} {
		t.Errorf("Mat3 zero value not identity: %v", got)
	}
	if got := (Mat2{}).Array(); got != [4]float64{1, 0, 0, 1} {
		t.Errorf("Mat2 zero value not identity: %v", got)
	}
	if got := NewMat4(nil).Array(); got != [16]float64{} {
		t.Errorf("NewMat4(nil) not zero: %v", got)
	}
	if NewMat3(nil).Det() != 0 || NewMat2(nil).Det() != 0 {
		t.Error("zero matrix determinant not zero")
	}
}

func TestMat4AgainstMathgl(t *testing.T) {
	rng := newRNG()
	tol := RelTol(1e-9, 1e-9)
	for i := 0; i < 200; i++ {
		a, b := randomMat4(rng), randomMat4(rng)
		if !equalMgl(a.Mul(b), mgl(a).Mul4(mgl(b)), tol) {
			t.Fatalf("Mul mismatch for\n%v\n%v", a.Array(), b.Array())
		}
		if !tol.Equal(a.Det(), mgl(a).Det()) {
			t.Errorf("Det mismatch. got %g, want %g", a.Det(), mgl(a).Det())
		}
		if Abs(a.Det()) < 1e-3 {
			continue
		}
		inv, ok := a.Inverse()
		if !ok {
			t.Fatal("expected invertible matrix")
		}
		if !equalMgl(inv, mgl(a).Inv(), RelTol(1e-8, 1e-8)) {
			t.Errorf("Inverse mismatch for %v", a.Array())
		}
		if !inv.Mul(a).EqualWithin(Mat4{}, AbsTol(1e-8)) {
			t.Errorf("inverse times matrix not identity: %v", inv.Mul(a).Array())
		}
	}
}

func TestMat4Layouts(t *testing.T) {
	m := NewMat4([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	if m.At(1, 2) != 7 || m.At(3, 0) != 13 {
		t.Errorf("At mismatch %v", m.Array())
	}
	cm := m.ColMajor32()
	gl := mgl(m)
	for i := range cm {
		if cm[i] != float32(gl[i]) {
			t.Fatalf("column major element %d: got %v, want %v", i, cm[i], gl[i])
		}
	}
	f := m.F32()
	if f[1] != 2 || f[4] != 5 {
		t.Errorf("F32 not row major: %v", f)
	}
	if tr := m.Translation(); tr.X != 4 || tr.Y != 8 || tr.Z != 12 {
		t.Errorf("bad translation %v", tr)
	}
	if got := m.Linear().Row(2); got.X != 9 || got.Z != 11 {
		t.Errorf("bad linear part %v", got)
	}
	if got := m.Transpose().At(0, 3); got != 13 {
		t.Errorf("bad transpose element %v", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	rng := newRNG()
	for i := 0; i < 200; i++ {
		m := randomMat3(rng)
		if Abs(m.Det()) < 1e-3 {
			continue
		}
		inv, ok := m.Inverse()
		if !ok {
			t.Fatal("expected invertible matrix")
		}
		if !m.Mul(inv).EqualWithin(Mat3{}, AbsTol(1e-8)) {
			t.Errorf("matrix times inverse not identity: %v", m.Mul(inv).Array())
		}
		if !RelTol(1e-9, 1e-9).Equal(m.Det()*inv.Det(), 1) {
			t.Errorf("det(m)·det(m⁻¹) = %g", m.Det()*inv.Det())
		}
	}
	if _, ok := NewMat3([]float64{1, 2, 3, 2, 4, 6, 0, 0, 1}).Inverse(); ok {
		t.Error("singular Mat3 reported invertible")
	}
	// Rows nearly parallel relative to their length.
	if _, ok := NewMat3([]float64{1, 2, 0, 1, 2 + 1e-13, 0, 0, 0, 1}).Inverse(); ok {
		t.Error("near singular Mat3 reported invertible")
	}
	if _, ok := NewMat3([]float64{1e-9, 0, 0, 0, 1e-9, 0, 0, 0, 1e-9}).Inverse(); !ok {
		t.Error("small uniform Mat3 reported singular")
	}
}

func TestMat2(t *testing.T) {
	m := NewMat2([]float64{4, 7, 2, 6})
	if m.Det() != 10 {
		t.Errorf("bad determinant %v", m.Det())
	}
	inv, ok := m.Inverse()
	if !ok || !inv.EqualWithin(NewMat2([]float64{0.6, -0.7, -0.2, 0.4}), DefaultTolerance) {
		t.Errorf("bad inverse %v", inv.Array())
	}
	if !m.Mul(inv).EqualWithin(Mat2{}, DefaultTolerance) {
		t.Errorf("matrix times inverse not identity: %v", m.Mul(inv).Array())
	}
	if got := m.Transpose().At(0, 1); got != 2 {
		t.Errorf("bad transpose %v", got)
	}
	if got := m.Scale(2).At(1, 1); got != 12 {
		t.Errorf("bad scale %v", got)
	}
	if _, ok := NewMat2([]float64{1, 2, 2, 4}).Inverse(); ok {
		t.Error("singular Mat2 reported invertible")
	}
}

func TestNewMatPanicsOnLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewMat4(make([]float64, 9))
}
