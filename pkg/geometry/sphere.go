package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, opts ...Option) (*Sphere, error) {
	if radius <= 0 {
		return nil, invalid("sphere radius %g must be positive", radius)
	}
	s, err := newSurface(opts)
	if err != nil {
		return nil, err
	}
	return &Sphere{surface: s, Center: center, Radius: radius}, nil
}

// NormalAt returns the outward normal at p
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// FindIntersections tests the ray against the sphere
func (s *Sphere) FindIntersections(ray core.Ray) []GeoPoint {
	// From the center there is no vector to project on; the ray leaves through one point
	if ray.Origin == s.Center {
		return []GeoPoint{{Geometry: s, Point: ray.At(s.Radius)}}
	}

	u := s.Center.Subtract(ray.Origin)
	tm := core.AlignZero(ray.Direction.Dot(u))
	d2 := core.AlignZero(u.LengthSquared() - tm*tm)
	th2 := core.AlignZero(s.Radius*s.Radius - d2)
	if th2 <= 0 {
		return nil
	}

	th := math.Sqrt(th2)
	var points []GeoPoint
	for _, t := range [2]float64{core.AlignZero(tm - th), core.AlignZero(tm + th)} {
		if t > 0 {
			points = append(points, GeoPoint{Geometry: s, Point: ray.At(t)})
		}
	}
	return points
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}
