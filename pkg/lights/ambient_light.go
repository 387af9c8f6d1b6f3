package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// AmbientLight is a constant fill light added once to every shaded point
type AmbientLight struct {
	intensity core.Vec3
}

// NewAmbientLight creates an ambient light of color scaled by kA
func NewAmbientLight(color core.Vec3, kA float64) AmbientLight {
	return AmbientLight{intensity: color.Multiply(kA)}
}

func (a AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Intensity returns the same color everywhere
func (a AmbientLight) Intensity(core.Vec3) core.Vec3 {
	return a.intensity
}
