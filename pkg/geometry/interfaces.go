package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidGeometry is returned when a primitive cannot be built from its parameters
var ErrInvalidGeometry = errors.New("invalid geometry")

// Intersectable is anything a ray can be tested against: a single primitive or a composite
type Intersectable interface {
	// FindIntersections returns every point where the ray enters or leaves the object,
	// excluding the ray origin itself. It returns nil when the ray misses.
	FindIntersections(ray core.Ray) []GeoPoint
	// BoundingBox returns the axis-aligned box around the object, or false if unbounded
	BoundingBox() (core.AABB, bool)
}

// Geometry is a primitive surface. The set of implementations is closed:
// Sphere, Plane, Polygon, Tube and Cylinder.
type Geometry interface {
	Intersectable
	// NormalAt returns the unit normal at a point known to lie on the surface
	NormalAt(p core.Vec3) core.Vec3
	Emission() core.Vec3
	Material() material.Material

	surfaceProperties() *surface
}

// surface holds the shading properties every primitive carries
type surface struct {
	emission core.Vec3
	material material.Material
}

// Emission returns the color the surface emits on its own
func (s *surface) Emission() core.Vec3 {
	return s.emission
}

// Material returns the Phong material of the surface
func (s *surface) Material() material.Material {
	return s.material
}

func (s *surface) surfaceProperties() *surface {
	return s
}

// Option configures the surface properties of a primitive
type Option func(*surface)

// WithEmission sets the emission color (0..255 scale)
func WithEmission(color core.Vec3) Option {
	return func(s *surface) {
		s.emission = color
	}
}

// WithMaterial sets the material
func WithMaterial(m material.Material) Option {
	return func(s *surface) {
		s.material = m
	}
}

func newSurface(opts []Option) (surface, error) {
	var s surface
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.material.Validate(); err != nil {
		return surface{}, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}
	return s, nil
}

// GeoPoint is a point on the surface of a specific primitive
type GeoPoint struct {
	Geometry Geometry
	Point    core.Vec3
}

// Equal reports whether both points lie on the same primitive at the same position
func (gp GeoPoint) Equal(other GeoPoint) bool {
	return gp.Geometry == other.Geometry && gp.Point == other.Point
}

// invalid wraps a construction failure in ErrInvalidGeometry
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}
