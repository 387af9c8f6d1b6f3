package renderer

import (
	"context"
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestWorkerCount(t *testing.T) {
	n, err := workerCount(3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 3)

	n, err = workerCount(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldBeGreaterThanOrEqualTo, 1)

	_, err = workerCount(-2)
	test.That(t, errors.Is(err, ErrInvalidParallelism), test.ShouldBeTrue)
}

func renderBuiltin(t *testing.T, id string, nx, ny int, config Config) (*memorySink, RenderStats) {
	t.Helper()
	s, err := scene.NewBuiltinScene(id)
	test.That(t, err, test.ShouldBeNil)
	s.FitViewPlane(nx, ny)
	s.BuildHierarchy()

	sink := newMemorySink(nx, ny)
	r := NewRenderer(s, sink, config, nil)
	stats, err := r.RenderImage(context.Background())
	test.That(t, err, test.ShouldBeNil)
	return sink, stats
}

func TestRenderImageWritesEveryPixelOnce(t *testing.T) {
	config := DefaultConfig()
	config.NumWorkers = 4
	sink, stats := renderBuiltin(t, "basic", 40, 30, config)

	for i, w := range sink.writes {
		if w != 1 {
			t.Fatalf("pixel %d written %d times", i, w)
		}
	}
	test.That(t, stats.TotalPixels, test.ShouldEqual, 40*30)
	test.That(t, stats.Workers, test.ShouldEqual, 4)
	test.That(t, stats.BackgroundHits, test.ShouldBeGreaterThan, 0)
	test.That(t, stats.BackgroundHits, test.ShouldBeLessThan, stats.TotalPixels)
	test.That(t, stats.Hierarchy.Primitives, test.ShouldEqual, 5)
	test.That(t, sink.flushes, test.ShouldEqual, 0)
}

func TestRenderImageDeterministic(t *testing.T) {
	config := DefaultConfig()
	config.NumWorkers = 1
	config.BundleSize = 4
	first, _ := renderBuiltin(t, "glossy", 16, 16, config)
	second, _ := renderBuiltin(t, "glossy", 16, 16, config)
	test.That(t, second.pixels, test.ShouldResemble, first.pixels)
}

func TestRenderImageParallelMatchesSequential(t *testing.T) {
	// Without stochastic materials the worker count cannot change the image
	config := DefaultConfig()
	config.NumWorkers = 1
	sequential, _ := renderBuiltin(t, "shadow", 24, 24, config)
	config.NumWorkers = 6
	parallel, _ := renderBuiltin(t, "shadow", 24, 24, config)
	test.That(t, parallel.pixels, test.ShouldResemble, sequential.pixels)
}

func TestRenderImageEmptyScene(t *testing.T) {
	sc := newTestScene(t, 1)
	sc.background = core.NewVec3(7, 8, 9)
	sink := newMemorySink(8, 8)
	config := DefaultConfig()
	config.NumWorkers = 2
	logger := &recordingLogger{}
	r := NewRenderer(sc, sink, config, logger)

	stats, err := r.RenderImage(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, stats.BackgroundHits, test.ShouldEqual, 64)
	test.That(t, stats.Coverage(), test.ShouldEqual, 0.0)
	for _, p := range sink.pixels {
		test.That(t, p, test.ShouldResemble, sc.background)
	}
	test.That(t, logger.contains("Rendering 8x8 with 2 workers"), test.ShouldBeTrue)
	test.That(t, logger.contains("Progress: 100%"), test.ShouldBeTrue)
}

func TestRenderImageNumericError(t *testing.T) {
	sc := newTestScene(t, 1)
	sc.geometries = geometry.NewGeometries(panickingGeometry{})
	config := DefaultConfig()
	config.NumWorkers = 3
	r := NewRenderer(sc, newMemorySink(4, 4), config, nil)

	_, err := r.RenderImage(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, core.ErrInvalidVector), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at pixel")
}

func TestRenderImageCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newMemorySink(4, 4)
	r := NewRenderer(newTestScene(t, 1), sink, DefaultConfig(), nil)
	_, err := r.RenderImage(ctx)
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
	for _, w := range sink.writes {
		test.That(t, w, test.ShouldEqual, 0)
	}
}

func TestRenderImageInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxDepth = 0
	r := NewRenderer(newTestScene(t, 1), newMemorySink(1, 1), config, nil)
	_, err := r.RenderImage(context.Background())
	test.That(t, errors.Is(err, ErrInvalidConfig), test.ShouldBeTrue)
}
