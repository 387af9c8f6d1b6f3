package lights

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidLight is returned when a light cannot be built from its parameters
var ErrInvalidLight = errors.New("invalid light")

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// Light is anything that contributes intensity at a point
type Light interface {
	Type() LightType

	// Intensity returns the color reaching p (0..255 scale)
	Intensity(p core.Vec3) core.Vec3
}

// LightSource is a light that arrives from a direction and can be shadowed
type LightSource interface {
	Light

	// Direction returns the unit direction the light travels to reach p,
	// from the light towards p
	Direction(p core.Vec3) core.Vec3

	// Distance returns how far p is from the light. Lights at infinity
	// return +Inf.
	Distance(p core.Vec3) float64
}
