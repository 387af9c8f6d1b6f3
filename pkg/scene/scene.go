package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is filled during
// setup and must not change once rendering starts.
type Scene struct {
	Name       string
	background core.Vec3
	ambient    lights.AmbientLight
	geometries *geometry.Geometries
	camera     *geometry.Camera
	viewPlane  geometry.ViewPlane
	lights     []lights.LightSource
}

// New creates an empty scene with a black background and no ambient light
func New(name string, camera *geometry.Camera, viewPlane geometry.ViewPlane) *Scene {
	return &Scene{
		Name:       name,
		geometries: geometry.NewGeometries(),
		camera:     camera,
		viewPlane:  viewPlane,
	}
}

// SetBackground sets the color of rays that hit nothing
func (s *Scene) SetBackground(color core.Vec3) *Scene {
	s.background = color
	return s
}

// SetAmbientLight sets the light added once to every visible point
func (s *Scene) SetAmbientLight(ambient lights.AmbientLight) *Scene {
	s.ambient = ambient
	return s
}

// AddGeometries adds primitives or composites to the scene root
func (s *Scene) AddGeometries(items ...geometry.Intersectable) *Scene {
	s.geometries.Add(items...)
	return s
}

// AddLights adds light sources
func (s *Scene) AddLights(sources ...lights.LightSource) *Scene {
	s.lights = append(s.lights, sources...)
	return s
}

// BuildHierarchy builds the bounding volume hierarchy over the scene root
func (s *Scene) BuildHierarchy() {
	s.geometries.BuildHierarchy()
}

// FitViewPlane keeps the view plane width and matches its height to the
// aspect ratio of an nx by ny image
func (s *Scene) FitViewPlane(nx, ny int) {
	if nx > 0 && ny > 0 {
		s.viewPlane.Height = s.viewPlane.Width * float64(ny) / float64(nx)
	}
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.geometries.Primitives())
}

func (s *Scene) Background() core.Vec3 {
	return s.background
}

func (s *Scene) AmbientLight() lights.Light {
	return s.ambient
}

func (s *Scene) Geometries() geometry.Intersectable {
	return s.geometries
}

// Root returns the composite holding every geometry of the scene
func (s *Scene) Root() *geometry.Geometries {
	return s.geometries
}

func (s *Scene) Camera() *geometry.Camera {
	return s.camera
}

func (s *Scene) ViewPlane() geometry.ViewPlane {
	return s.viewPlane
}

func (s *Scene) Lights() []lights.LightSource {
	return s.lights
}
