package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func TestAmbientLight_Intensity(t *testing.T) {
	ambient := NewAmbientLight(core.NewVec3(255, 191, 191), 0.1)

	want := core.NewVec3(25.5, 19.1, 19.1)
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(100, -4, 7)} {
		if got := ambient.Intensity(p); !got.ApproxEqual(want, tolerance) {
			t.Errorf("Intensity(%v): expected %v, got %v", p, want, got)
		}
	}
	if ambient.Type() != LightTypeAmbient {
		t.Errorf("Expected ambient type, got %s", ambient.Type())
	}
}

func TestDirectionalLight(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(100, 100, 100), core.NewVec3(0, 0, -2))
	if err != nil {
		t.Fatalf("NewDirectionalLight: %v", err)
	}

	p := core.NewVec3(3, 4, 5)
	if got := light.Direction(p); !got.ApproxEqual(core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected normalized direction (0, 0, -1), got %v", got)
	}
	if !math.IsInf(light.Distance(p), 1) {
		t.Errorf("Expected infinite distance, got %f", light.Distance(p))
	}
	if got := light.Intensity(p); got != core.NewVec3(100, 100, 100) {
		t.Errorf("Expected unattenuated intensity, got %v", got)
	}

	if _, err := NewDirectionalLight(core.NewVec3(1, 1, 1), core.Vec3{}); !errors.Is(err, ErrInvalidLight) {
		t.Errorf("Expected ErrInvalidLight for zero direction, got %v", err)
	}
}

func TestPointLight_Attenuation(t *testing.T) {
	tests := []struct {
		name        string
		attenuation Attenuation
		point       core.Vec3
		want        float64
	}{
		{"no falloff", DefaultAttenuation(), core.NewVec3(0, 0, 10), 100},
		{"linear", Attenuation{KC: 1, KL: 0.1}, core.NewVec3(0, 0, 10), 50},
		{"quadratic", Attenuation{KC: 1, KQ: 0.01}, core.NewVec3(0, 10, 0), 50},
		{"all three", Attenuation{KC: 1, KL: 0.5, KQ: 0.25}, core.NewVec3(2, 0, 0), 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := NewPointLight(core.NewVec3(100, 100, 100), core.NewVec3(0, 0, 0), tt.attenuation)
			if err != nil {
				t.Fatalf("NewPointLight: %v", err)
			}
			got := light.Intensity(tt.point)
			if math.Abs(got.X-tt.want) > tolerance {
				t.Errorf("Expected intensity %f, got %f", tt.want, got.X)
			}
		})
	}
}

func TestPointLight_DirectionAndDistance(t *testing.T) {
	light, err := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(1, 2, 3), DefaultAttenuation())
	if err != nil {
		t.Fatalf("NewPointLight: %v", err)
	}

	p := core.NewVec3(1, 2, 8)
	if got := light.Direction(p); !got.ApproxEqual(core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected direction from light to point (0, 0, 1), got %v", got)
	}
	if got := light.Distance(p); math.Abs(got-5) > tolerance {
		t.Errorf("Expected distance 5, got %f", got)
	}
}

func TestNewPointLight_Invalid(t *testing.T) {
	for _, att := range []Attenuation{{}, {KC: -1, KL: 1}} {
		if _, err := NewPointLight(core.NewVec3(1, 1, 1), core.Vec3{}, att); !errors.Is(err, ErrInvalidLight) {
			t.Errorf("Attenuation %+v: expected ErrInvalidLight, got %v", att, err)
		}
	}
}

func TestSpotLight_Intensity(t *testing.T) {
	light, err := NewSpotLight(core.NewVec3(100, 100, 100), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), DefaultAttenuation())
	if err != nil {
		t.Fatalf("NewSpotLight: %v", err)
	}

	tests := []struct {
		name  string
		point core.Vec3
		want  float64
	}{
		{"straight ahead", core.NewVec3(0, 0, -10), 100},
		{"45 degrees", core.NewVec3(0, 10, -10), 100 * math.Sqrt(0.5)},
		{"side", core.NewVec3(10, 0, 0), 0},
		{"behind", core.NewVec3(0, 1, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.Intensity(tt.point)
			if math.Abs(got.Y-tt.want) > tolerance {
				t.Errorf("Expected intensity %f, got %f", tt.want, got.Y)
			}
			if got.X < 0 || got.Y < 0 || got.Z < 0 {
				t.Errorf("Expected non-negative intensity, got %v", got)
			}
		})
	}

	if light.Type() != LightTypeSpot {
		t.Errorf("Expected spot type, got %s", light.Type())
	}
}

func TestLightSources(t *testing.T) {
	directional, _ := NewDirectionalLight(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	point, _ := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), DefaultAttenuation())
	spot, _ := NewSpotLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), DefaultAttenuation())

	p := core.NewVec3(3, 0, 0)
	for _, light := range []LightSource{directional, point, spot} {
		if got := light.Direction(p); math.Abs(got.Length()-1) > tolerance {
			t.Errorf("%s: expected unit direction, got %v", light.Type(), got)
		}
	}
}
