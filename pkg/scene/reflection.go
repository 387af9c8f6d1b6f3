package scene

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewReflectionScene creates a transparent sphere holding a smaller opaque
// one, reflected in a full mirror and a half mirror
func NewReflectionScene() (*Scene, error) {
	camera, err := geometry.NewCamera(core.NewVec3(0, 0, -10000), core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0))
	if err != nil {
		return nil, err
	}

	outer, err1 := geometry.NewSphere(core.NewVec3(-950, 900, 1000), 400,
		geometry.WithEmission(core.NewVec3(0, 0, 100)),
		geometry.WithMaterial(material.NewReflective(0.25, 0.25, 20, 0.5, 0)))
	inner, err2 := geometry.NewSphere(core.NewVec3(-950, 900, 1000), 200,
		geometry.WithEmission(core.NewVec3(100, 20, 20)),
		geometry.WithMaterial(material.New(0.25, 0.25, 20)))
	mirror, err3 := geometry.NewTriangle(
		core.NewVec3(1500, 1500, 1500), core.NewVec3(-1500, -1500, 1500), core.NewVec3(670, -670, -3000),
		geometry.WithEmission(core.NewVec3(20, 20, 20)),
		geometry.WithMaterial(material.NewReflective(0, 0, 0, 0, 1)))
	halfMirror, err4 := geometry.NewTriangle(
		core.NewVec3(1500, 1500, 1500), core.NewVec3(-1500, -1500, 1500), core.NewVec3(-1500, 1500, 2000),
		geometry.WithEmission(core.NewVec3(20, 20, 20)),
		geometry.WithMaterial(material.NewReflective(0, 0, 0, 0, 0.5)))
	spot, err5 := lights.NewSpotLight(core.NewVec3(1020, 400, 400), core.NewVec3(-750, 750, 150), core.NewVec3(-1, 1, 4),
		lights.Attenuation{KC: 1, KL: 0.00001, KQ: 0.000005})
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}

	s := New("reflection", camera, geometry.ViewPlane{Distance: 10000, Width: 2500, Height: 2500}).
		SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 255, 255), 0.1)).
		AddGeometries(outer, inner, mirror, halfMirror).
		AddLights(spot)
	return s, nil
}
