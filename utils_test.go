package affine

import (
	"math"
	"testing"
)

func TestScalarHelpers(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1.5, -1, 1) != -1 || Clamp(int8(2), 0, 3) != 2 {
		t.Error("Clamp")
	}
	if Mix(2.0, 4.0, 0.25) != 2.5 || Mix(float32(0), 10, 1) != 10 {
		t.Error("Mix")
	}
	if Sign(-3) != -1 || Sign(0.0) != 0 || Sign(int64(7)) != 1 {
		t.Error("Sign")
	}
	if Abs(-2.5) != 2.5 || Abs(int32(-4)) != 4 {
		t.Error("Abs")
	}
	if got := RtoD(DtoR(72)); math.Abs(got-72) > 1e-12 {
		t.Errorf("degree round trip %v", got)
	}
}

func TestTolerance(t *testing.T) {
	next := math.Nextafter(1, 2)
	for _, c := range []struct {
		tol  Tolerance
		a, b float64
		want bool
	}{
		{Tolerance{}, 1, 1, true},
		{Tolerance{}, 1, next, false},
		{AbsTol(1e-9), 1, 1 + 1e-10, true},
		{AbsTol(1e-9), 1, 1 + 1e-8, false},
		{RelTol(0, 1e-6), 1e6, 1e6 + 0.5, true},
		{RelTol(0, 1e-6), 1e6, 1e6 + 5, false},
		{ULPTol(0, 1), 1, next, true},
		{ULPTol(0, 1), 1, math.Nextafter(next, 2), false},
		{DefaultTolerance, math.NaN(), math.NaN(), false},
	} {
		if got := c.tol.Equal(c.a, c.b); got != c.want {
			t.Errorf("%+v.Equal(%v, %v) = %v, want %v", c.tol, c.a, c.b, got, c.want)
		}
	}
}
