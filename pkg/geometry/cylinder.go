package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a tube cut to a finite height and closed with two caps.
// The base cap is centered on the axis origin, the top cap Height along the axis.
type Cylinder struct {
	Tube
	Height float64
}

// NewCylinder creates a closed cylinder
func NewCylinder(axis core.Ray, radius, height float64, opts ...Option) (*Cylinder, error) {
	if height <= 0 {
		return nil, invalid("cylinder height %g must be positive", height)
	}
	tube, err := newTube(axis, radius, opts)
	if err != nil {
		return nil, err
	}
	return &Cylinder{Tube: tube, Height: height}, nil
}

func (c *Cylinder) top() core.Vec3 {
	return c.Axis.At(c.Height)
}

// NormalAt returns the cap normal on the caps, the wall normal elsewhere
func (c *Cylinder) NormalAt(p core.Vec3) core.Vec3 {
	s := core.AlignZero(c.Axis.Direction.Dot(p.Subtract(c.Axis.Origin)))
	switch {
	case s == 0:
		return c.Axis.Direction.Negate()
	case core.IsZero(s - c.Height):
		return c.Axis.Direction
	default:
		return c.Tube.NormalAt(p)
	}
}

// FindIntersections tests the ray against the wall segment and both caps
func (c *Cylinder) FindIntersections(ray core.Ray) []GeoPoint {
	va := c.Axis.Direction
	var points []GeoPoint

	for _, t := range c.wallHits(ray) {
		p := ray.At(t)
		s := core.AlignZero(va.Dot(p.Subtract(c.Axis.Origin)))
		if s > 0 && core.AlignZero(s-c.Height) < 0 {
			points = append(points, GeoPoint{Geometry: c, Point: p})
		}
	}

	nv := core.AlignZero(va.Dot(ray.Direction))
	if nv == 0 {
		return points
	}
	for _, center := range [2]core.Vec3{c.Axis.Origin, c.top()} {
		t := core.AlignZero(va.Dot(center.Subtract(ray.Origin)) / nv)
		if t <= 0 {
			continue
		}
		p := ray.At(t)
		if core.AlignZero(p.Subtract(center).LengthSquared()-c.Radius*c.Radius) < 0 {
			points = append(points, GeoPoint{Geometry: c, Point: p})
		}
	}
	return points
}

// BoundingBox bounds both cap discs. A disc with unit normal n and radius r
// extends r·sqrt(1 - n_i²) along axis i.
func (c *Cylinder) BoundingBox() (core.AABB, bool) {
	va := c.Axis.Direction
	extent := core.NewVec3(
		c.Radius*math.Sqrt(math.Max(0, 1-va.X*va.X)),
		c.Radius*math.Sqrt(math.Max(0, 1-va.Y*va.Y)),
		c.Radius*math.Sqrt(math.Max(0, 1-va.Z*va.Z)),
	)
	base, top := c.Axis.Origin, c.top()
	return core.NewAABBFromPoints(
		base.Subtract(extent), base.Add(extent),
		top.Subtract(extent), top.Add(extent),
	), true
}
