package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	Background() core.Vec3
	AmbientLight() lights.Light
	Geometries() geometry.Intersectable
	Camera() *geometry.Camera
	ViewPlane() geometry.ViewPlane
	Lights() []lights.LightSource
}

// ImageSink receives rendered pixels. Writes from different workers always
// target different pixels.
type ImageSink interface {
	Resolution() (nx, ny int)
	WritePixel(col, row int, color core.Vec3)
	Flush() error
}

// Renderer traces the scene into an image sink
type Renderer struct {
	scene  Scene
	sink   ImageSink
	config Config
	logger core.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(scene Scene, sink ImageSink, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		scene:  scene,
		sink:   sink,
		config: config,
		logger: logger,
	}
}

// SetParallelism sets the number of workers; 0 derives it from the CPU
func (r *Renderer) SetParallelism(n int) error {
	if n < 0 {
		return ErrInvalidParallelism
	}
	r.config.NumWorkers = n
	return nil
}

// WriteToImage flushes the sink
func (r *Renderer) WriteToImage() error {
	return r.sink.Flush()
}

// PrintGrid overwrites every interval-th row and column with color
func (r *Renderer) PrintGrid(interval int, color core.Vec3) {
	if interval <= 0 {
		return
	}
	nx, ny := r.sink.Resolution()
	for row := 0; row < ny; row++ {
		for col := 0; col < nx; col++ {
			if row%interval == 0 || col%interval == 0 {
				r.sink.WritePixel(col, row, color)
			}
		}
	}
}

// closestIntersection returns the intersection nearest to the ray origin,
// ignoring points at the origin itself
func (r *Renderer) closestIntersection(ray core.Ray) (geometry.GeoPoint, bool) {
	var closest geometry.GeoPoint
	found := false
	best := math.Inf(1)
	for _, gp := range r.scene.Geometries().FindIntersections(ray) {
		d := core.AlignZero(ray.Origin.Distance(gp.Point))
		if d > 0 && d < best {
			closest, best, found = gp, d, true
		}
	}
	return closest, found
}

// ClosestPoint returns the nearest intersection of a primary ray that lies on
// or beyond the view plane. Points between the camera and the view plane are
// skipped by casting again from each of them.
func (r *Renderer) ClosestPoint(ray core.Ray) (geometry.GeoPoint, bool) {
	gp, ok := r.closestIntersection(ray)
	if !ok {
		return geometry.GeoPoint{}, false
	}

	screenDistance := r.viewPlaneDistance(ray)
	for ray.Origin.Distance(gp.Point) < screenDistance {
		gp, ok = r.closestIntersection(core.Ray{Origin: gp.Point, Direction: ray.Direction})
		if !ok {
			return geometry.GeoPoint{}, false
		}
	}
	return gp, true
}

// viewPlaneDistance returns how far along the ray the view plane is,
// or 0 if the ray never meets it
func (r *Renderer) viewPlaneDistance(ray core.Ray) float64 {
	camera := r.scene.Camera()
	center := camera.ViewPlaneCenter(r.scene.ViewPlane())

	nv := core.AlignZero(camera.VTo.Dot(ray.Direction))
	if nv == 0 {
		return 0
	}
	t := camera.VTo.Dot(center.Subtract(ray.Origin)) / nv
	if t <= 0 {
		return 0
	}
	return camera.Location.Distance(ray.At(t))
}

// traceRay returns the color seen along a primary ray
func (r *Renderer) traceRay(ray core.Ray, sampler core.Sampler) (core.Vec3, bool) {
	gp, ok := r.ClosestPoint(ray)
	if !ok {
		return r.scene.Background(), false
	}
	ambient := r.scene.AmbientLight().Intensity(gp.Point)
	return ambient.Add(r.calcColor(gp, ray, r.config.MaxDepth, 1.0, sampler)), true
}

// renderPixel traces the primary ray through pixel (col, row)
func (r *Renderer) renderPixel(nx, ny, col, row int, sampler core.Sampler) (core.Vec3, bool) {
	ray := r.scene.Camera().ConstructRay(nx, ny, col, row, r.scene.ViewPlane())
	return r.traceRay(ray, sampler)
}
