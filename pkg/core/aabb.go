package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray passes through this AABB using the slab method.
// A zero direction component divides to ±Inf, so the slab for that axis is
// either everything or nothing. NaN bounds (origin exactly on a face of a slab
// the ray runs parallel to) never reject.
func (aabb AABB) Hit(ray Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		t1 := (aabb.Min.Axis(axis) - origin) / direction
		t2 := (aabb.Max.Axis(axis) - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		// Reject when the intervals seen so far do not overlap
		if tMin > t2 || t1 > tMax {
			return false
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	}

	// The whole box is behind the ray origin
	return !(tMax < 0)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Mid returns the midpoint of the box along one axis
func (aabb AABB) Mid(axis int) float64 {
	return (aabb.Min.Axis(axis) + aabb.Max.Axis(axis)) / 2
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// ApproxEqual compares the corners of two boxes within tolerance
func (aabb AABB) ApproxEqual(other AABB, tolerance float64) bool {
	return aabb.Min.ApproxEqual(other.Min, tolerance) && aabb.Max.ApproxEqual(other.Max, tolerance)
}
