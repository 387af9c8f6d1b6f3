package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	surface
	Point  core.Vec3
	Normal core.Vec3
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point, normal core.Vec3, opts ...Option) (*Plane, error) {
	n, err := normal.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: plane normal: %w", ErrInvalidGeometry, err)
	}
	s, err := newSurface(opts)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: s, Point: point, Normal: n}, nil
}

// NewPlaneFromPoints creates the plane through three points.
// The normal follows the right-hand rule over (p2-p1, p3-p1).
func NewPlaneFromPoints(p1, p2, p3 core.Vec3, opts ...Option) (*Plane, error) {
	n, err := p2.Subtract(p1).Cross(p3.Subtract(p1)).TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: points %v %v %v are collinear: %w", ErrInvalidGeometry, p1, p2, p3, err)
	}
	return NewPlane(p1, n, opts...)
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// FindIntersections returns the single crossing point of the ray, if any
func (p *Plane) FindIntersections(ray core.Ray) []GeoPoint {
	t, ok := p.intersect(ray)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: ray.At(t)}}
}

// intersect returns the ray parameter of the crossing point. Rays parallel to
// the plane or starting on it do not intersect.
func (p *Plane) intersect(ray core.Ray) (float64, bool) {
	nv := core.AlignZero(p.Normal.Dot(ray.Direction))
	if nv == 0 {
		return 0, false
	}
	nqp := core.AlignZero(p.Normal.Dot(p.Point.Subtract(ray.Origin)))
	if nqp == 0 {
		return 0, false
	}
	t := core.AlignZero(nqp / nv)
	return t, t > 0
}

// BoundingBox reports the plane as unbounded
func (p *Plane) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}
