package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func zAxis() core.Ray {
	return core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
}

func TestTube_FindIntersections(t *testing.T) {
	tube, err := NewTube(zAxis(), 1)
	if err != nil {
		t.Fatalf("NewTube: %v", err)
	}

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		want      []core.Vec3
	}{
		{"crosses", core.NewVec3(-2, 0, 0.5), core.NewVec3(1, 0, 0), []core.Vec3{core.NewVec3(-1, 0, 0.5), core.NewVec3(1, 0, 0.5)}},
		{"from the axis", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), []core.Vec3{core.NewVec3(1, 0, 0)}},
		{"parallel to the axis", core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, 1), nil},
		{"misses", core.NewVec3(-2, 2, 0), core.NewVec3(1, 0, 0), nil},
		{"tangent", core.NewVec3(-2, 1, 0), core.NewVec3(1, 0, 0), nil},
		{"points away", core.NewVec3(2, 0, 0), core.NewVec3(1, 0, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			assertPoints(t, tube.FindIntersections(ray), tt.want...)
		})
	}
}

func TestTube_NormalAt(t *testing.T) {
	tube, err := NewTube(zAxis(), 1)
	if err != nil {
		t.Fatalf("NewTube: %v", err)
	}

	tests := []struct {
		point core.Vec3
		want  core.Vec3
	}{
		{core.NewVec3(1, 0, 5), core.NewVec3(1, 0, 0)},
		{core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0)},
		{core.NewVec3(0, 1, -3), core.NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		if got := tube.NormalAt(tt.point); !got.ApproxEqual(tt.want, tolerance) {
			t.Errorf("NormalAt(%v): expected %v, got %v", tt.point, tt.want, got)
		}
	}

	if _, ok := tube.BoundingBox(); ok {
		t.Error("Expected tube to be unbounded")
	}
}

func TestNewTube_Invalid(t *testing.T) {
	if _, err := NewTube(zAxis(), 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero radius, got %v", err)
	}
	axis := core.Ray{Origin: core.NewVec3(0, 0, 0)}
	if _, err := NewTube(axis, 1); !errors.Is(err, core.ErrInvalidVector) {
		t.Errorf("Expected ErrInvalidVector for zero axis, got %v", err)
	}
}
