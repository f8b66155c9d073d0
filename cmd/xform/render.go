package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/affine"
	"github.com/soypat/affine/camera"
	"github.com/soypat/affine/internal/d3"
	"github.com/soypat/affine/mesh"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

func renderCmd(fs *flag.FlagSet) func(*zap.Logger) error {
	path := fs.String("p", "", "3D pipeline YAML file, empty renders the mesh untransformed")
	in := fs.String("in", "", "input binary STL file")
	out := fs.String("out", "xform.png", "output PNG file")
	width := fs.Uint("w", 1280, "image width in pixels")
	height := fs.Uint("h", 720, "image height in pixels")
	supersample := fs.Uint("ss", 2, "supersampling factor for antialiasing")
	fovy := fs.Float64("fovy", 30, "vertical field of view in degrees")
	return func(log *zap.Logger) error {
		if *width == 0 || *height == 0 || *supersample == 0 {
			return errors.New("image size and supersampling must be positive")
		}
		model, err := readMesh(log, *in)
		if err != nil {
			return err
		}
		if *path != "" {
			c, err := loadPipeline(*path)
			if err != nil {
				return err
			}
			t, err := c.Build3()
			if err != nil {
				return err
			}
			model = mesh.Transform(model, t)
		}
		box, _ := mesh.Bounds(model)
		view, proj := frame(box, affine.DtoR(*fovy), float64(*width)/float64(*height))
		if err := proj.Validate(); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
		log.Debug("camera placed", zap.Stringer("view", view), zap.Any("projection", proj))

		fm, err := fauxglMesh(model)
		if err != nil {
			return err
		}
		eye := view.InverseTransformPoint(r3.Vec{})
		vp := camera.ViewProjection(proj, view)
		ss := *supersample
		ctx := fauxgl.NewContext(int(*width*ss), int(*height*ss))
		ctx.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
		shader := fauxgl.NewPhongShader(fauxglMatrix(vp.Matrix()), fauxgl.V(-0.75, 1, 0.25).Normalize(), fauxgl.V(eye.X, eye.Y, eye.Z))
		shader.ObjectColor = fauxgl.HexColor("#468966")
		ctx.Shader = shader
		ctx.DrawMesh(fm)

		img := resize.Resize(*width, *height, ctx.Image(), resize.Bilinear)
		if err := fauxgl.SavePNG(*out, img); err != nil {
			return err
		}
		log.Info("render saved", zap.String("file", *out), zap.Int("triangles", len(model)))
		return nil
	}
}

// frame places a camera looking at the center of box from a fixed
// direction at the distance where the box's bounding sphere fills the
// vertical field of view.
func frame(box r3.Box, fovy, aspect float64) (affine.Isometry3, camera.PerspectiveFov) {
	center := d3.Box(box).Center()
	radius := 0.5 * r3.Norm(d3.Box(box).Size())
	if radius == 0 {
		radius = 1
	}
	dist := 1.1 * radius / math.Sin(fovy/2)
	dir := r3.Unit(r3.Vec{X: 1, Y: -1.5, Z: 1})
	eye := r3.Add(center, r3.Scale(dist, dir))
	view := affine.Isometry3LookAtRH(eye, center, r3.Vec{Z: 1})
	proj := camera.PerspectiveFov{
		Fovy:   fovy,
		Aspect: aspect,
		Near:   math.Max(dist-2*radius, dist/100),
		Far:    dist + 2*radius,
	}
	return view, proj
}

// fauxglMesh converts the model by round tripping it through a temporary
// STL file, the input format fauxgl loads meshes from.
func fauxglMesh(model []mesh.Triangle) (*fauxgl.Mesh, error) {
	fp, err := os.CreateTemp("", "xform-*.stl")
	if err != nil {
		return nil, err
	}
	defer os.Remove(fp.Name())
	err = mesh.WriteSTL(fp, model)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return fauxgl.LoadSTL(fp.Name())
}

func fauxglMatrix(m affine.Mat4) fauxgl.Matrix {
	a := m.Array()
	return fauxgl.Matrix{
		X00: a[0], X01: a[1], X02: a[2], X03: a[3],
		X10: a[4], X11: a[5], X12: a[6], X13: a[7],
		X20: a[8], X21: a[9], X22: a[10], X23: a[11],
		X30: a[12], X31: a[13], X32: a[14], X33: a[15],
	}
}
