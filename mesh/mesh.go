// Package mesh applies affine transformations to triangle meshes and
// reads and writes them in the binary STL format.
package mesh

import (
	"github.com/soypat/affine"
	"github.com/soypat/affine/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a mesh face. Vertices are ordered counter-clockwise when
// viewed from the side the face normal points to.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle given by the right hand
// rule over its vertex order. Degenerate triangles have a NaN normal.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the mean of the triangle's vertices.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1./3, r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// Degenerate reports whether two of the triangle's vertices are within tol
// of each other.
func (t Triangle) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Transform returns the triangles with every vertex transformed as a point
// by tr. When tr reverses orientation, as reflections and negative scales
// do, the vertex order of each triangle is swapped so the normals keep
// pointing out of the mesh.
//
// The orientation of a projective tr is the sign of the determinant of its
// full homogeneous matrix, which matches the linear part for affine
// transforms. Meshes must not straddle the plane tr sends to infinity.
func Transform(tris []Triangle, tr affine.Affine3) []Triangle {
	flip := tr.ToTransform().Matrix().Det() < 0
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		for j := range t {
			out[i][j] = tr.TransformPoint(t[j])
		}
		if flip {
			out[i][1], out[i][2] = out[i][2], out[i][1]
		}
	}
	return out
}

// Bounds returns the axis aligned bounding box of the mesh's vertices.
// ok is false for an empty mesh.
func Bounds(tris []Triangle) (box r3.Box, ok bool) {
	if len(tris) == 0 {
		return r3.Box{}, false
	}
	b := d3.Box{Min: tris[0][0], Max: tris[0][0]}
	for _, t := range tris {
		for _, v := range t {
			b = b.Include(v)
		}
	}
	return r3.Box(b), true
}
