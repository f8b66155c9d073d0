// Command xform composes transformation pipelines described in YAML and
// applies them to points, STL meshes and 2D polygons.
//
// Usage:
//
//	xform <command> [flags]
//
// Commands are apply, stl, plot and render. Run xform <command> -h for
// the flags of each command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soypat/affine/internal/pipeline"
	"go.uber.org/zap"
)

// command registers its flags on a flag set and returns the function that
// runs it once the flags are parsed.
type command struct {
	name  string
	short string
	setup func(fs *flag.FlagSet) func(log *zap.Logger) error
}

var commands = []command{
	{name: "apply", short: "print the composed matrix and transformed points", setup: applyCmd},
	{name: "stl", short: "transform a binary STL mesh", setup: stlCmd},
	{name: "plot", short: "plot a 2D polygon before and after the pipeline", setup: plotCmd},
	{name: "render", short: "render a transformed STL mesh to PNG", setup: renderCmd},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		fs := flag.NewFlagSet(c.name, flag.ExitOnError)
		verbose := fs.Bool("v", false, "verbose development logging")
		run := c.setup(fs)
		fs.Parse(os.Args[2:])
		log, err := newLogger(*verbose)
		if err != nil {
			fmt.Fprintln(os.Stderr, "creating logger:", err)
			os.Exit(1)
		}
		err = run(log.Named(c.name))
		log.Sync()
		if err != nil {
			log.Error("command failed", zap.String("command", c.name), zap.Error(err))
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: xform <command> [flags]\n\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.short)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	return cfg.Build()
}

func loadPipeline(path string) (*pipeline.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("no pipeline file given")
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	c, err := pipeline.Load(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
