package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneID  string
	width    int
	height   int
	workers  int
	maxDepth int
	bundle   int
	seed     int64
	grid     int
	bvh      bool
	ply      string
	plySize  float64
	output   string
	list     bool
	help     bool
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	defaults := renderer.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneID, "scene", "basic", "Built-in scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of render workers (0 = derive from CPU cores)")
	fs.IntVar(&opts.maxDepth, "depth", defaults.MaxDepth, "Maximum reflection and refraction depth")
	fs.IntVar(&opts.bundle, "bundle", defaults.BundleSize, "Rays per glossy or diffuse-glass bundle")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Seed for stochastic sampling")
	fs.IntVar(&opts.grid, "grid", 0, "Overlay a grid every N pixels (0 = no grid)")
	fs.BoolVar(&opts.bvh, "bvh", true, "Build a bounding volume hierarchy before rendering")
	fs.StringVar(&opts.ply, "ply", "", "PLY mesh to add to the scene in front of the camera")
	fs.Float64Var(&opts.plySize, "ply-size", 0, "Largest extent of the added mesh (0 = half the view plane width)")
	fs.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.list, "list", false, "List built-in scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	err := fs.Parse(args)
	return opts, fs, err
}

func (o options) config() renderer.Config {
	config := renderer.DefaultConfig()
	config.NumWorkers = o.workers
	config.MaxDepth = o.maxDepth
	config.BundleSize = o.bundle
	config.Seed = o.seed
	return config
}

// createScene builds a built-in scene and resolves the image size
func createScene(id string, width, height int) (*scene.Scene, int, int, error) {
	info, err := scene.LookupBuiltinScene(id)
	if err != nil {
		return nil, 0, 0, err
	}
	s, err := scene.NewBuiltinScene(id)
	if err != nil {
		return nil, 0, 0, err
	}
	if width <= 0 {
		width = info.Width
	}
	if height <= 0 {
		height = info.Height
	}
	return s, width, height, nil
}

// addMesh loads a PLY mesh, fits it just beyond the view plane center and
// adds it to the scene as one composite
func addMesh(s *scene.Scene, path string, size float64) error {
	mesh, err := loaders.LoadPLY(path)
	if err != nil {
		return err
	}

	vp := s.ViewPlane()
	if size <= 0 {
		size = vp.Width / 2
	}
	camera := s.Camera()
	mesh.Fit(camera.ViewPlaneCenter(vp).Add(camera.VTo.Multiply(size)), size)

	polygons, skipped := mesh.Polygons(
		geometry.WithEmission(core.NewVec3(90, 90, 110)),
		geometry.WithMaterial(material.New(0.5, 0.5, 40)))
	s.AddGeometries(geometry.NewGeometries(polygons...))
	fmt.Printf("Loaded %s: %d vertices, %d polygons (%d degenerate faces skipped)\n",
		path, len(mesh.Vertices), len(polygons), skipped)
	return nil
}

// outputPath returns the explicit path, or a timestamped file under output/<scene>
func outputPath(explicit, sceneID string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-12s %s (%dx%d)\n", info.ID, info.Description, info.Width, info.Height)
	}
}

func run(ctx context.Context, args []string) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return nil
	}
	if opts.list {
		printScenes()
		return nil
	}

	fmt.Println("Starting Whitted Raytracer...")

	s, width, height, err := createScene(opts.sceneID, opts.width, opts.height)
	if err != nil {
		return err
	}
	s.FitViewPlane(width, height)
	if opts.ply != "" {
		if err := addMesh(s, opts.ply, opts.plySize); err != nil {
			return err
		}
	}
	fmt.Printf("Using %s scene (%d primitives) at %dx%d\n", s.Name, s.PrimitiveCount(), width, height)

	if opts.bvh {
		buildStart := time.Now()
		s.BuildHierarchy()
		fmt.Printf("Built hierarchy in %v\n", time.Since(buildStart))
	}

	writer := output.NewImageWriter(outputPath(opts.output, opts.sceneID, time.Now()), width, height)
	r := renderer.NewRenderer(s, writer, opts.config(), renderer.NewDefaultLogger())

	stats, err := r.RenderImage(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Coverage: %.1f%% of pixels hit geometry\n", stats.Coverage()*100)

	if opts.grid > 0 {
		r.PrintGrid(opts.grid, core.NewVec3(255, 255, 255))
	}
	if err := r.WriteToImage(); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s (average luminance %.3f)\n", writer.Path(), output.AverageLuminance(writer.Image()))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
