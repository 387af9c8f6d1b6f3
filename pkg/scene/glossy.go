package scene

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlossyScene creates a glossy mirror and a diffuse glass sphere standing
// on a floor. Both sample bundles of rays per hit.
func NewGlossyScene() (*Scene, error) {
	camera, err := standardCamera()
	if err != nil {
		return nil, err
	}

	floor, err1 := geometry.NewPlane(core.NewVec3(0, 100, 0), core.NewVec3(0, -1, 0),
		geometry.WithEmission(core.NewVec3(70, 50, 50)),
		geometry.WithMaterial(material.New(0.5, 0.5, 60)))
	glass, err2 := geometry.NewSphere(core.NewVec3(70, 70, 700), 30,
		geometry.WithEmission(core.NewVec3(0, 0, 255)),
		geometry.WithMaterial(material.NewStochastic(0.2, 0.2, 30, 0.6, 0, 0, 30)))
	ball, err3 := geometry.NewSphere(core.NewVec3(30, 85, 550), 15,
		geometry.WithEmission(core.NewVec3(255, 0, 0)),
		geometry.WithMaterial(material.New(0.2, 0.2, 30)))
	mirror, err4 := geometry.NewPolygon([]core.Vec3{
		core.NewVec3(-30, 100, 550), core.NewVec3(130, 100, 920), core.NewVec3(130, 20, 920), core.NewVec3(-30, 20, 550),
	}, geometry.WithMaterial(material.NewStochastic(0.05, 0.9, 30, 0, 1, 60, 0)))
	spot, err5 := lights.NewSpotLight(core.NewVec3(400, 260, 260), core.NewVec3(0, -200, 200), core.NewVec3(1, 1, 0),
		lights.Attenuation{KC: 1, KL: 4e-5, KQ: 2e-7})
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}

	s := New("glossy", camera, geometry.ViewPlane{Distance: 1000, Width: 200, Height: 200}).
		SetBackground(core.NewVec3(232, 203, 148)).
		SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 255, 255), 0.15)).
		AddGeometries(floor, glass, ball, mirror).
		AddLights(spot)
	return s, nil
}
