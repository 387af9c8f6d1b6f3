package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Attenuation holds the constant, linear and quadratic falloff factors
// of a point light: intensity / (KC + KL·d + KQ·d²)
type Attenuation struct {
	KC float64
	KL float64
	KQ float64
}

// DefaultAttenuation returns no falloff
func DefaultAttenuation() Attenuation {
	return Attenuation{KC: 1}
}

func (a Attenuation) validate() error {
	if a.KC < 0 || a.KL < 0 || a.KQ < 0 {
		return fmt.Errorf("%w: negative attenuation %+v", ErrInvalidLight, a)
	}
	if a.KC == 0 && a.KL == 0 && a.KQ == 0 {
		return fmt.Errorf("%w: attenuation factors are all zero", ErrInvalidLight)
	}
	return nil
}

// factor returns the attenuation at distance d
func (a Attenuation) factor(d float64) float64 {
	return 1 / (a.KC + a.KL*d + a.KQ*d*d)
}

// PointLight is an omnidirectional light at a position
type PointLight struct {
	intensity   core.Vec3
	Position    core.Vec3
	Attenuation Attenuation
}

// NewPointLight creates a point light
func NewPointLight(intensity, position core.Vec3, attenuation Attenuation) (*PointLight, error) {
	if err := attenuation.validate(); err != nil {
		return nil, err
	}
	return &PointLight{intensity: intensity, Position: position, Attenuation: attenuation}, nil
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Intensity falls off with distance from the light
func (pl *PointLight) Intensity(p core.Vec3) core.Vec3 {
	return pl.intensity.Multiply(pl.Attenuation.factor(pl.Distance(p)))
}

// Direction points from the light to p
func (pl *PointLight) Direction(p core.Vec3) core.Vec3 {
	return p.Subtract(pl.Position).Normalize()
}

// Distance returns the Euclidean distance from the light to p
func (pl *PointLight) Distance(p core.Vec3) float64 {
	return pl.Position.Distance(p)
}
