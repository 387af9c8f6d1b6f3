package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tube is an infinite circular tube around an axis
type Tube struct {
	surface
	Axis   core.Ray
	Radius float64
}

// NewTube creates an infinite tube of the given radius around axis
func NewTube(axis core.Ray, radius float64, opts ...Option) (*Tube, error) {
	tube, err := newTube(axis, radius, opts)
	if err != nil {
		return nil, err
	}
	return &tube, nil
}

func newTube(axis core.Ray, radius float64, opts []Option) (Tube, error) {
	if radius <= 0 {
		return Tube{}, invalid("tube radius %g must be positive", radius)
	}
	dir, err := axis.Direction.TryNormalize()
	if err != nil {
		return Tube{}, fmt.Errorf("%w: tube axis: %w", ErrInvalidGeometry, err)
	}
	s, err := newSurface(opts)
	if err != nil {
		return Tube{}, err
	}
	return Tube{surface: s, Axis: core.Ray{Origin: axis.Origin, Direction: dir}, Radius: radius}, nil
}

// NormalAt returns the normal from the axis towards p
func (t *Tube) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(t.axisPoint(p)).Normalize()
}

// axisPoint projects p onto the axis
func (t *Tube) axisPoint(p core.Vec3) core.Vec3 {
	s := core.AlignZero(t.Axis.Direction.Dot(p.Subtract(t.Axis.Origin)))
	if s == 0 {
		return t.Axis.Origin
	}
	return t.Axis.At(s)
}

// FindIntersections tests the ray against the tube wall
func (t *Tube) FindIntersections(ray core.Ray) []GeoPoint {
	var points []GeoPoint
	for _, s := range t.wallHits(ray) {
		points = append(points, GeoPoint{Geometry: t, Point: ray.At(s)})
	}
	return points
}

// wallHits solves |(q - p0) - va·((q - p0)·va)|² = r² for q on the ray and
// returns the positive roots. Rays parallel to the axis never cross the wall.
func (t *Tube) wallHits(ray core.Ray) []float64 {
	va := t.Axis.Direction
	dp := ray.Origin.Subtract(t.Axis.Origin)
	vPerp := ray.Direction.Subtract(va.Multiply(ray.Direction.Dot(va)))
	dpPerp := dp.Subtract(va.Multiply(dp.Dot(va)))

	a := core.AlignZero(vPerp.LengthSquared())
	if a == 0 {
		return nil
	}
	b := 2 * vPerp.Dot(dpPerp)
	c := dpPerp.LengthSquared() - t.Radius*t.Radius

	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var roots []float64
	for _, s := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if s = core.AlignZero(s); s > 0 {
			roots = append(roots, s)
		}
	}
	return roots
}

// BoundingBox reports the tube as unbounded
func (t *Tube) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}
