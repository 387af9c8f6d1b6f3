package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

const (
	// spareCores are left free when the worker count is derived from the CPU
	spareCores = 2
	// progressSteps is how many progress lines a render logs
	progressSteps = 10
)

// workerCount resolves the configured number of workers. 0 means all cores
// but spareCores, falling back to a single worker on small machines.
func workerCount(requested int) (int, error) {
	if requested < 0 {
		return 0, fmt.Errorf("%w: %d workers", ErrInvalidParallelism, requested)
	}
	if requested > 0 {
		return requested, nil
	}

	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}
	if n := cores - spareCores; n > 2 {
		return n, nil
	}
	return 1, nil
}

// RenderImage renders every pixel into the sink using a pool of workers that
// claim pixels from a shared cursor. The first worker error cancels the
// others and is returned. The sink is not flushed.
func (r *Renderer) RenderImage(ctx context.Context) (RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return RenderStats{}, err
	}
	workers, err := workerCount(r.config.NumWorkers)
	if err != nil {
		return RenderStats{}, err
	}

	nx, ny := r.sink.Resolution()
	stats := RenderStats{TotalPixels: nx * ny, Workers: workers}
	if h, ok := r.scene.Geometries().(interface{ Stats() geometry.HierarchyStats }); ok {
		stats.Hierarchy = h.Stats()
		r.logger.Printf("Scene: %d primitives (%d unbounded), hierarchy depth %d\n",
			stats.Hierarchy.Primitives, stats.Hierarchy.Unbounded, stats.Hierarchy.MaxDepth)
	}
	r.logger.Printf("Rendering %dx%d with %d workers\n", nx, ny, workers)

	start := time.Now()
	cursor := newPixelCursor(nx, ny)
	misses := make([]int, workers)

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < workers; id++ {
		id := id
		g.Go(func() error {
			return r.runWorker(gctx, id, cursor, &misses[id])
		})
	}
	if err := g.Wait(); err != nil {
		return stats, fmt.Errorf("render: %w", err)
	}

	for _, m := range misses {
		stats.BackgroundHits += m
	}
	stats.Duration = time.Since(start)
	r.logger.Printf("Render complete in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return stats, nil
}

// runWorker renders pixels until the cursor is exhausted or ctx is done.
// Numeric panics from the shading math become the worker's error.
func (r *Renderer) runWorker(ctx context.Context, id int, cursor *pixelCursor, misses *int) (err error) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed + int64(id))))
	nx, ny := r.sink.Resolution()
	total := cursor.total()
	step := total / progressSteps

	var col, row int
	defer func() {
		if rec := recover(); rec != nil {
			perr, ok := rec.(error)
			if !ok || !core.IsNumeric(perr) {
				panic(rec)
			}
			err = fmt.Errorf("worker %d at pixel (%d, %d): %w", id, col, row, perr)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var ok bool
		col, row, ok = cursor.claim()
		if !ok {
			return nil
		}

		color, hit := r.renderPixel(nx, ny, col, row, sampler)
		if !hit {
			*misses++
		}
		r.sink.WritePixel(col, row, color)

		if done := cursor.done(); step > 0 && (done%step == 0 || done == total) {
			r.logger.Printf("Progress: %d%%\n", done*100/total)
		}
	}
}
