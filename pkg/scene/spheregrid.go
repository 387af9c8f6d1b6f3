package scene

import (
	"errors"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	gridSize   = 8
	gridRadius = 12.0
	gridFloorY = 100.0
)

// hueToRGB returns a fully saturated color for hue in degrees, 0..255 scale
func hueToRGB(hue float64) core.Vec3 {
	channel := func(offset float64) float64 {
		k := math.Mod(offset+hue/60, 6)
		return 255 * (1 - math.Max(0, math.Min(1, math.Min(k, 4-k))))
	}
	return core.NewVec3(channel(5), channel(3), channel(1))
}

// NewSphereGridScene creates a grid of spheres with a cylinder at every
// third cell, standing on a reflective floor
func NewSphereGridScene() (*Scene, error) {
	camera, err := geometry.NewCamera(core.NewVec3(0, -300, -800), core.NewVec3(0, 0.6, 0.8), core.NewVec3(0, -0.8, 0.6))
	if err != nil {
		return nil, err
	}

	floor, err := geometry.NewPlane(core.NewVec3(0, gridFloorY, 0), core.NewVec3(0, -1, 0),
		geometry.WithEmission(core.NewVec3(40, 40, 40)),
		geometry.WithMaterial(material.NewReflective(0.4, 0.3, 40, 0, 0.3)))
	if err != nil {
		return nil, err
	}

	grid := geometry.NewGeometries()
	var errs []error
	spacing := 4 * gridRadius
	offset := spacing * (gridSize - 1) / 2
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - offset
			z := 500 + float64(j)*spacing
			color := hueToRGB(float64(i*gridSize+j) * 360 / (gridSize * gridSize))

			if (i+j)%3 == 0 {
				axis := core.NewRay(core.NewVec3(x, gridFloorY, z), core.NewVec3(0, -1, 0))
				cyl, err := geometry.NewCylinder(axis, gridRadius*0.7, gridRadius*3,
					geometry.WithEmission(color.Multiply(0.4)),
					geometry.WithMaterial(material.New(0.5, 0.4, 30)))
				errs = append(errs, err)
				grid.Add(cyl)
				continue
			}

			sphere, err := geometry.NewSphere(core.NewVec3(x, gridFloorY-gridRadius, z), gridRadius,
				geometry.WithEmission(color.Multiply(0.4)),
				geometry.WithMaterial(material.NewReflective(0.4, 0.6, 80, 0, 0.2)))
			errs = append(errs, err)
			grid.Add(sphere)
		}
	}

	directional, err1 := lights.NewDirectionalLight(core.NewVec3(120, 120, 110), core.NewVec3(-1, 2, 1))
	point, err2 := lights.NewPointLight(core.NewVec3(500, 450, 400), core.NewVec3(0, -200, 450),
		lights.Attenuation{KC: 1, KL: 0.0005, KQ: 0.00001})
	errs = append(errs, err1, err2)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	s := New("sphere-grid", camera, geometry.ViewPlane{Distance: 800, Width: 450, Height: 450}).
		SetBackground(core.NewVec3(20, 20, 35)).
		SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 255, 255), 0.08)).
		AddGeometries(floor, grid).
		AddLights(directional, point)
	return s, nil
}
