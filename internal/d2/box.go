package d2

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d axis aligned bounding box.
type Box r2.Box

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// BoundsOf returns the smallest box containing every point of the set.
// The set must not be empty.
func BoundsOf(s Set) Box {
	return Box{Min: s.Min(), Max: s.Max()}
}

// Equals test the equality of 2d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Include enlarges a 2d box to include a point.
func (a Box) Include(v r2.Vec) Box {
	return Box{MinElem(a.Min, v), MaxElem(a.Max, v)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Vertices returns a slice of 2d box corner vertices.
func (a Box) Vertices() Set {
	v := make([]r2.Vec, 4)
	v[0] = a.Min                          // bl
	v[1] = r2.Vec{X: a.Max.X, Y: a.Min.Y} // br
	v[2] = r2.Vec{X: a.Min.X, Y: a.Max.Y} // tl
	v[3] = a.Max                          // tr
	return v
}

// Random returns a random point within a bounding box.
func (b *Box) Random(rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: randomRange(rng, b.Min.X, b.Max.X),
		Y: randomRange(rng, b.Min.Y, b.Max.Y),
	}
}

// RandomSet returns a set of random points from within a bounding box.
func (b *Box) RandomSet(rng *rand.Rand, n int) Set {
	s := make([]r2.Vec, n)
	for i := range s {
		s[i] = b.Random(rng)
	}
	return s
}

// randomRange returns a random float64 [a,b)
func randomRange(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}
