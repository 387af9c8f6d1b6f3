package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewCylinder_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		height float64
	}{
		{"zero height", 1, 0},
		{"negative height", 1, -2},
		{"negative radius", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCylinder(zAxis(), tt.radius, tt.height); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestCylinder_FindIntersections(t *testing.T) {
	cyl, err := NewCylinder(zAxis(), 1, 2)
	if err != nil {
		t.Fatalf("NewCylinder: %v", err)
	}

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		want      []core.Vec3
	}{
		{"through the wall", core.NewVec3(-2, 0, 1), core.NewVec3(1, 0, 0), []core.Vec3{core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1)}},
		{"above the top", core.NewVec3(-2, 0, 3), core.NewVec3(1, 0, 0), nil},
		{"through both caps", core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1), []core.Vec3{core.NewVec3(0.5, 0, 0), core.NewVec3(0.5, 0, 2)}},
		{"base cap then wall", core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 2), []core.Vec3{core.NewVec3(0.5, 0, 0), core.NewVec3(1, 0, 1)}},
		{"beside the caps", core.NewVec3(3, 0, -1), core.NewVec3(0, 0, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			assertPoints(t, cyl.FindIntersections(ray), tt.want...)
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	cyl, err := NewCylinder(zAxis(), 1, 2)
	if err != nil {
		t.Fatalf("NewCylinder: %v", err)
	}

	tests := []struct {
		name  string
		point core.Vec3
		want  core.Vec3
	}{
		{"base cap", core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1)},
		{"top cap", core.NewVec3(0.5, 0, 2), core.NewVec3(0, 0, 1)},
		{"wall", core.NewVec3(1, 0, 1), core.NewVec3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cyl.NormalAt(tt.point); !got.ApproxEqual(tt.want, tolerance) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCylinder_BoundingBox(t *testing.T) {
	h := math.Sqrt(0.5)
	tests := []struct {
		name    string
		axis    core.Ray
		radius  float64
		height  float64
		wantMin core.Vec3
		wantMax core.Vec3
	}{
		{
			name:    "axis-aligned Z",
			axis:    zAxis(),
			radius:  1,
			height:  2,
			wantMin: core.NewVec3(-1, -1, 0),
			wantMax: core.NewVec3(1, 1, 2),
		},
		{
			name:    "diagonal in XY",
			axis:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0)),
			radius:  1,
			height:  math.Sqrt2,
			wantMin: core.NewVec3(-h, -h, -1),
			wantMax: core.NewVec3(1+h, 1+h, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl, err := NewCylinder(tt.axis, tt.radius, tt.height)
			if err != nil {
				t.Fatalf("NewCylinder: %v", err)
			}
			box, ok := cyl.BoundingBox()
			if !ok {
				t.Fatal("Expected cylinder to be bounded")
			}
			want := core.NewAABB(tt.wantMin, tt.wantMax)
			if !box.ApproxEqual(want, 1e-9) {
				t.Errorf("Expected box %v, got %v", want, box)
			}
		})
	}
}
