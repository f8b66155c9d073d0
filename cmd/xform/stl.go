package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/soypat/affine/mesh"
	"go.uber.org/zap"
)

func stlCmd(fs *flag.FlagSet) func(*zap.Logger) error {
	path := fs.String("p", "", "3D pipeline YAML file")
	in := fs.String("in", "", "input binary STL file")
	out := fs.String("out", "out.stl", "output binary STL file")
	return func(log *zap.Logger) error {
		c, err := loadPipeline(*path)
		if err != nil {
			return err
		}
		t, err := c.Build3()
		if err != nil {
			return err
		}
		model, err := readMesh(log, *in)
		if err != nil {
			return err
		}
		model = mesh.Transform(model, t)
		fp, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer fp.Close()
		if err := mesh.WriteSTL(fp, model); err != nil {
			return fmt.Errorf("%s: %w", *out, err)
		}
		box, _ := mesh.Bounds(model)
		log.Info("mesh written", zap.String("file", *out), zap.Int("triangles", len(model)),
			zap.Any("min", box.Min), zap.Any("max", box.Max))
		return fp.Close()
	}
}

// readMesh reads a binary STL file. Normal mismatches are logged and the
// model is kept.
func readMesh(log *zap.Logger, path string) ([]mesh.Triangle, error) {
	if path == "" {
		return nil, errors.New("no input STL file given")
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	model, err := mesh.ReadSTL(fp)
	if errors.Is(err, mesh.ErrNormalMismatch) {
		log.Warn("ignoring stored normals", zap.String("file", path), zap.Error(err))
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("mesh read", zap.String("file", path), zap.Int("triangles", len(model)))
	return model, nil
}
