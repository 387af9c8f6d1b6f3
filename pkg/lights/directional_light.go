package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along one direction
type DirectionalLight struct {
	intensity core.Vec3
	direction core.Vec3
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(intensity, direction core.Vec3) (*DirectionalLight, error) {
	dir, err := direction.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: direction: %w", ErrInvalidLight, err)
	}
	return &DirectionalLight{intensity: intensity, direction: dir}, nil
}

func (d *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Intensity is not attenuated
func (d *DirectionalLight) Intensity(core.Vec3) core.Vec3 {
	return d.intensity
}

// Direction is the same everywhere
func (d *DirectionalLight) Direction(core.Vec3) core.Vec3 {
	return d.direction
}

// Distance is infinite, so every blocker along the shadow ray counts
func (d *DirectionalLight) Distance(core.Vec3) float64 {
	return math.Inf(1)
}
