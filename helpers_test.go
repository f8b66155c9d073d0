package affine

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func newRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func randomVec2(rng *rand.Rand, r float64) r2.Vec {
	return r2.Vec{X: r * (2*rng.Float64() - 1), Y: r * (2*rng.Float64() - 1)}
}

func randomVec3(rng *rand.Rand, r float64) r3.Vec {
	box := d3.NewBox(r3.Vec{}, d3.Elem(2*r))
	return box.Random(rng)
}

func randomAxis(rng *rand.Rand) r3.Vec {
	for {
		v := randomVec3(rng, 1)
		if n := r3.Norm(v); n > 0.1 && n <= 1 {
			return r3.Scale(1/n, v)
		}
	}
}

func randomRotation3(rng *rand.Rand) Rotation3 {
	return NewRotation3(randomAxis(rng), math.Pi*(2*rng.Float64()-1))
}

func randomIsometry3(rng *rand.Rand) Isometry3 {
	return NewIsometry3(NewTranslation3(randomVec3(rng, 10)), randomRotation3(rng))
}

func randomIsometry2(rng *rand.Rand) Isometry2 {
	return Isometry2FromAngle(randomVec2(rng, 10), math.Pi*(2*rng.Float64()-1))
}

func randomSimilarity3(rng *rand.Rand) Similarity3 {
	return Similarity3FromIsometry(randomIsometry3(rng), 0.1+4*rng.Float64())
}

func randomSimilarity2(rng *rand.Rand) Similarity2 {
	return Similarity2FromIsometry(randomIsometry2(rng), 0.1+4*rng.Float64())
}

func randomMat4(rng *rand.Rand) Mat4 {
	var a [16]float64
	for i := range a {
		a[i] = 2*rng.Float64() - 1
	}
	return NewMat4(a[:])
}

func randomMat3(rng *rand.Rand) Mat3 {
	var a [9]float64
	for i := range a {
		a[i] = 2*rng.Float64() - 1
	}
	return NewMat3(a[:])
}

// mgl converts m to the column major mathgl representation.
func mgl(m Mat4) mgl64.Mat4 {
	return mgl64.Mat4(m.Transpose().Array())
}

func mglVec(v r3.Vec) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func equalMgl(m Mat4, want mgl64.Mat4, tol Tolerance) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !tol.Equal(m.At(i, j), want.At(i, j)) {
				return false
			}
		}
	}
	return true
}
