package material

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterial is returned for materials with negative coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong shading coefficients of a surface.
// It is a value type; a Material never changes once built.
type Material struct {
	KD        float64 // Diffuse factor
	KS        float64 // Specular factor
	Shininess int     // Specular exponent
	KT        float64 // Transparency (refraction) factor
	KR        float64 // Reflectivity factor

	// Radius of the sampling disc for glossy reflection, 0 for a perfect mirror
	KGlossiness float64
	// Radius of the sampling disc for diffuse refraction, 0 for clear glass
	KDiffuseGlass float64
}

// New creates an opaque, non-reflective material
func New(kd, ks float64, shininess int) Material {
	return NewReflective(kd, ks, shininess, 0, 0)
}

// NewReflective creates a material with transparency and reflectivity
func NewReflective(kd, ks float64, shininess int, kt, kr float64) Material {
	return NewStochastic(kd, ks, shininess, kt, kr, 0, 0)
}

// NewStochastic creates a material with glossy reflection and diffuse glass
func NewStochastic(kd, ks float64, shininess int, kt, kr, kGlossiness, kDiffuseGlass float64) Material {
	return Material{
		KD:            kd,
		KS:            ks,
		Shininess:     shininess,
		KT:            kt,
		KR:            kr,
		KGlossiness:   kGlossiness,
		KDiffuseGlass: kDiffuseGlass,
	}
}

// Validate rejects negative coefficients
func (m Material) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"kD", m.KD},
		{"kS", m.KS},
		{"shininess", float64(m.Shininess)},
		{"kT", m.KT},
		{"kR", m.KR},
		{"kGlossiness", m.KGlossiness},
		{"kDiffuseGlass", m.KDiffuseGlass},
	}
	for _, v := range values {
		if v.value < 0 {
			return fmt.Errorf("%w: %s is %g", ErrInvalidMaterial, v.name, v.value)
		}
	}
	return nil
}

// IsOpaque reports whether the material blocks all light
func (m Material) IsOpaque() bool {
	return m.KT == 0
}
