package geometry

import (
	"sort"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func mustSphere(t *testing.T, center core.Vec3, radius float64, opts ...Option) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, opts...)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func mustPlane(t *testing.T, p1, p2, p3 core.Vec3) *Plane {
	t.Helper()
	p, err := NewPlaneFromPoints(p1, p2, p3)
	if err != nil {
		t.Fatalf("NewPlaneFromPoints: %v", err)
	}
	return p
}

func mustTriangle(t *testing.T, a, b, c core.Vec3) *Polygon {
	t.Helper()
	p, err := NewTriangle(a, b, c)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return p
}

// sortedPoints returns the intersection points ordered by x, then y, then z
func sortedPoints(points []GeoPoint) []core.Vec3 {
	result := make([]core.Vec3, len(points))
	for i, p := range points {
		result[i] = p.Point
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return result
}

func assertPoints(t *testing.T, got []GeoPoint, want ...core.Vec3) {
	t.Helper()
	if len(want) == 0 {
		if got != nil {
			t.Fatalf("Expected no intersection, got %v", sortedPoints(got))
		}
		return
	}
	points := sortedPoints(got)
	if len(points) != len(want) {
		t.Fatalf("Expected %d intersections, got %d: %v", len(want), len(points), points)
	}
	for i := range want {
		if !points[i].ApproxEqual(want[i], tolerance) {
			t.Errorf("Intersection %d: expected %v, got %v", i, want[i], points[i])
		}
	}
}
