package scene

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShadowScene creates a semi-transparent sphere between a spot light and
// two triangles, so the shadow it casts is partial
func NewShadowScene() (*Scene, error) {
	camera, err := standardCamera()
	if err != nil {
		return nil, err
	}

	opaque := material.New(0.5, 0.5, 60)
	tri1, err1 := geometry.NewTriangle(core.NewVec3(-150, 150, 115), core.NewVec3(150, 150, 135), core.NewVec3(75, -75, 150),
		geometry.WithMaterial(opaque))
	tri2, err2 := geometry.NewTriangle(core.NewVec3(-150, 150, 115), core.NewVec3(-70, -70, 140), core.NewVec3(75, -75, 150),
		geometry.WithMaterial(opaque))
	sphere, err3 := geometry.NewSphere(core.NewVec3(60, -50, 50), 30,
		geometry.WithEmission(core.NewVec3(0, 0, 255)),
		geometry.WithMaterial(material.NewReflective(0.2, 0.2, 30, 0.6, 0)))
	spot, err4 := lights.NewSpotLight(core.NewVec3(700, 400, 400), core.NewVec3(60, -50, 0), core.NewVec3(0, 0, 1),
		lights.Attenuation{KC: 1, KL: 4e-5, KQ: 2e-7})
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return nil, err
	}

	s := New("shadow", camera, geometry.ViewPlane{Distance: 1000, Width: 200, Height: 200}).
		SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 255, 255), 0.15)).
		AddGeometries(tri1, tri2, sphere).
		AddLights(spot)
	return s, nil
}
