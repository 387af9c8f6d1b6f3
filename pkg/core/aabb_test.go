package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"miss beside", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)), false},
		{"parallel outside slab", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), false},
		{"parallel on face", NewRay(NewVec3(0, 1, -5), NewVec3(0, 0, 1)), true},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0.3, 0)), true},
		{"box behind origin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"skew miss", NewRay(NewVec3(-5, 3, 0), NewVec3(1, 0.1, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_UnionAndMid(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 3), NewVec3(-1, 4, 5))

	union := a.Union(b)
	expected := NewAABB(NewVec3(-2, 0, 0), NewVec3(1, 4, 5))
	if !union.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, union)
	}
	if math.Abs(union.Mid(0)+0.5) > 1e-12 || math.Abs(union.Mid(1)-2) > 1e-12 || math.Abs(union.Mid(2)-2.5) > 1e-12 {
		t.Errorf("Unexpected midpoints for %v", union)
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -3, 2), NewVec3(-1, 5, 0), NewVec3(0, 0, 7))
	expected := NewAABB(NewVec3(-1, -3, 0), NewVec3(1, 5, 7))
	if !box.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
