package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	BackgroundHits int           // Primary rays that found nothing beyond the view plane
	Workers        int           // Number of workers used
	Duration       time.Duration // Wall time of the render
	Hierarchy      geometry.HierarchyStats
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalPixels-s.BackgroundHits) / float64(s.TotalPixels)
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}
