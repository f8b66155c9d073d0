package main

import (
	"errors"
	"flag"
	"image/color"

	"github.com/soypat/affine"
	"github.com/soypat/affine/internal/d2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func plotCmd(fs *flag.FlagSet) func(*zap.Logger) error {
	path := fs.String("p", "", "2D pipeline YAML file; its points form the polygon")
	out := fs.String("out", "xform.png", "output image, format given by extension")
	size := fs.Float64("size", 5, "image side length in inches")
	return func(log *zap.Logger) error {
		c, err := loadPipeline(*path)
		if err != nil {
			return err
		}
		t, err := c.Build2()
		if err != nil {
			return err
		}
		poly := c.Points2()
		if len(poly) == 0 {
			poly = []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
			log.Debug("no points in pipeline, using unit square")
		}
		if len(poly) < 2 {
			return errors.New("polygon needs at least 2 points")
		}
		p, err := plotPolygons(poly, t)
		if err != nil {
			return err
		}
		if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *out); err != nil {
			return err
		}
		box := d2.Box(t.ApplyBox(r2.Box(d2.BoundsOf(poly))))
		log.Info("plot saved", zap.String("file", *out),
			zap.Any("center", box.Center()), zap.Any("size", box.Size()))
		return nil
	}
}

// plotPolygons plots the closed polygon poly and its image under t.
func plotPolygons(poly []r2.Vec, t affine.Transform2) (*plot.Plot, error) {
	before := make(plotter.XYs, len(poly)+1)
	after := make(plotter.XYs, len(poly)+1)
	for i := range before {
		v := poly[i%len(poly)]
		tv := t.TransformPoint(v)
		before[i] = plotter.XY{X: v.X, Y: v.Y}
		after[i] = plotter.XY{X: tv.X, Y: tv.Y}
	}
	p := plot.New()
	p.Title.Text = "Pipeline"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	lb, err := plotter.NewLine(before)
	if err != nil {
		return nil, err
	}
	lb.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lb.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	la, err := plotter.NewLine(after)
	if err != nil {
		return nil, err
	}
	la.LineStyle.Color = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 255}
	la.LineStyle.Width = vg.Points(2)
	p.Add(lb, la)
	p.Legend.Add("before", lb)
	p.Legend.Add("after", la)
	return p, nil
}
