package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight is a point light aimed along a direction. Points behind the
// light's plane receive nothing.
type SpotLight struct {
	PointLight
	direction core.Vec3
}

// NewSpotLight creates a spot light at position aimed along direction
func NewSpotLight(intensity, position, direction core.Vec3, attenuation Attenuation) (*SpotLight, error) {
	dir, err := direction.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: direction: %w", ErrInvalidLight, err)
	}
	point, err := NewPointLight(intensity, position, attenuation)
	if err != nil {
		return nil, err
	}
	return &SpotLight{PointLight: *point, direction: dir}, nil
}

func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Intensity is the point light intensity scaled by the cosine between the
// spot direction and the direction to p
func (sl *SpotLight) Intensity(p core.Vec3) core.Vec3 {
	cos := core.AlignZero(sl.direction.Dot(sl.Direction(p)))
	if cos <= 0 {
		return core.Vec3{}
	}
	return sl.PointLight.Intensity(p).Multiply(cos)
}
