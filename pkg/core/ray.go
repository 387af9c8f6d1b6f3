package core

// ShadowEpsilon is how far secondary ray origins are pushed off a surface
const ShadowEpsilon = 0.1

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewOffsetRay creates a ray leaving a surface point. The origin is moved by
// ShadowEpsilon along normal, towards the side the direction points to, so the
// ray does not hit the surface it starts on.
func NewOffsetRay(head, direction, normal Vec3) Ray {
	delta := ShadowEpsilon
	if direction.Dot(normal) <= 0 {
		delta = -ShadowEpsilon
	}
	return NewRay(head.Add(normal.Multiply(delta)), direction)
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
