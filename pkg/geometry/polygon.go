package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Polygon is a convex planar polygon. Vertices are ordered along the edge path.
type Polygon struct {
	surface
	Vertices []core.Vec3
	plane    *Plane
}

// NewPolygon creates a convex polygon from at least three coplanar vertices
// given in edge order
func NewPolygon(vertices []core.Vec3, opts ...Option) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, invalid("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	s, err := newSurface(opts)
	if err != nil {
		return nil, err
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2])
	if err != nil {
		return nil, err
	}

	poly := &Polygon{
		surface:  s,
		Vertices: append([]core.Vec3(nil), vertices...),
		plane:    plane,
	}
	if len(vertices) == 3 {
		return poly, nil
	}

	// Every corner must turn the same way around the normal
	n := plane.Normal
	last := len(vertices) - 1
	edge1 := vertices[last].Subtract(vertices[last-1])
	edge2 := vertices[0].Subtract(vertices[last])
	turn := core.Sign(edge1.Cross(edge2).Dot(n))
	if turn == 0 {
		return nil, invalid("polygon has repeated or collinear vertices at %v", vertices[last])
	}

	for i := 1; i < len(vertices); i++ {
		if !core.IsZero(vertices[i].Subtract(vertices[0]).Dot(n)) {
			return nil, invalid("polygon vertex %v is not on the plane of the first three", vertices[i])
		}
		edge1 = edge2
		edge2 = vertices[i].Subtract(vertices[i-1])
		if core.Sign(edge1.Cross(edge2).Dot(n)) != turn {
			return nil, invalid("polygon is not convex or vertices are out of order at %v", vertices[i-1])
		}
	}
	return poly, nil
}

// NewTriangle creates a three-vertex polygon
func NewTriangle(a, b, c core.Vec3, opts ...Option) (*Polygon, error) {
	return NewPolygon([]core.Vec3{a, b, c}, opts...)
}

// NormalAt returns the polygon normal, which is the same everywhere
func (p *Polygon) NormalAt(core.Vec3) core.Vec3 {
	return p.plane.Normal
}

// FindIntersections intersects the polygon's plane, then keeps the point only
// if it lies strictly inside every edge as seen from the ray origin
func (p *Polygon) FindIntersections(ray core.Ray) []GeoPoint {
	t, ok := p.plane.intersect(ray)
	if !ok {
		return nil
	}

	sign := 0
	for i := range p.Vertices {
		vi := p.Vertices[i].Subtract(ray.Origin)
		vj := p.Vertices[(i+1)%len(p.Vertices)].Subtract(ray.Origin)
		s := core.Sign(ray.Direction.Dot(vi.Cross(vj)))
		if s == 0 {
			// Grazing an edge or vertex counts as a miss
			return nil
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return nil
		}
	}
	return []GeoPoint{{Geometry: p, Point: ray.At(t)}}
}

// BoundingBox returns the extrema of the vertices
func (p *Polygon) BoundingBox() (core.AABB, bool) {
	return core.NewAABBFromPoints(p.Vertices...), true
}
