package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/soypat/affine"
	"github.com/soypat/affine/internal/pipeline"
	"go.uber.org/zap"
)

func applyCmd(fs *flag.FlagSet) func(*zap.Logger) error {
	path := fs.String("p", "", "pipeline YAML file")
	inverse := fs.Bool("inv", false, "also print the inverse transform")
	return func(log *zap.Logger) error {
		c, err := loadPipeline(*path)
		if err != nil {
			return err
		}
		log.Debug("pipeline loaded", zap.Int("dim", c.Dim), zap.Int("steps", len(c.Steps)), zap.Int("points", len(c.Points)))
		if c.Dim == 2 {
			return apply2(os.Stdout, log, c, *inverse)
		}
		return apply3(os.Stdout, log, c, *inverse)
	}
}

func apply2(w io.Writer, log *zap.Logger, c *pipeline.Config, inverse bool) error {
	t, err := c.Build2()
	if err != nil {
		return err
	}
	printMat3(w, t.Matrix())
	if inverse {
		inv, ok := t.Inverse()
		if !ok {
			log.Warn("transform is singular, no inverse")
		} else {
			fmt.Fprintln(w, "inverse:")
			printMat3(w, inv.Matrix())
		}
	}
	for _, p := range c.Points2() {
		fmt.Fprintf(w, "%v -> %v\n", p, t.TransformPoint(p))
	}
	return nil
}

func apply3(w io.Writer, log *zap.Logger, c *pipeline.Config, inverse bool) error {
	t, err := c.Build3()
	if err != nil {
		return err
	}
	if !t.IsAffine(affine.DefaultTolerance) {
		log.Info("transform is projective, points are divided by w")
	}
	printMat4(w, t.Matrix())
	if inverse {
		inv, ok := t.Inverse()
		if !ok {
			log.Warn("transform is singular, no inverse")
		} else {
			fmt.Fprintln(w, "inverse:")
			printMat4(w, inv.Matrix())
		}
	}
	for _, p := range c.Points3() {
		fmt.Fprintf(w, "%v -> %v\n", p, t.TransformPoint(p))
	}
	return nil
}

func printMat3(w io.Writer, m affine.Mat3) {
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "[%12.6g %12.6g %12.6g]\n", m.At(i, 0), m.At(i, 1), m.At(i, 2))
	}
}

func printMat4(w io.Writer, m affine.Mat4) {
	for i := 0; i < 4; i++ {
		fmt.Fprintf(w, "[%12.6g %12.6g %12.6g %12.6g]\n", m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3))
	}
}
