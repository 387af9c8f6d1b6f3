package scene

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// standardCamera looks along +z from z = -1000 with image rows going down +y
func standardCamera() (*geometry.Camera, error) {
	return geometry.NewCamera(core.NewVec3(0, 0, -1000), core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0))
}

// NewBasicScene creates a sphere surrounded by four colored triangles, lit by
// ambient light only
func NewBasicScene() (*Scene, error) {
	camera, err := standardCamera()
	if err != nil {
		return nil, err
	}

	sphere, err1 := geometry.NewSphere(core.NewVec3(0, 0, 100), 50)
	tri1, err2 := geometry.NewTriangle(core.NewVec3(100, 0, 100), core.NewVec3(0, 100, 100), core.NewVec3(100, 100, 100),
		geometry.WithEmission(core.NewVec3(0, 100, 0)))
	tri2, err3 := geometry.NewTriangle(core.NewVec3(100, 0, 100), core.NewVec3(0, -100, 100), core.NewVec3(100, -100, 100),
		geometry.WithEmission(core.NewVec3(100, 0, 0)))
	tri3, err4 := geometry.NewTriangle(core.NewVec3(-100, 0, 100), core.NewVec3(0, 100, 100), core.NewVec3(-100, 100, 100),
		geometry.WithEmission(core.NewVec3(0, 0, 100)))
	tri4, err5 := geometry.NewTriangle(core.NewVec3(-100, 0, 100), core.NewVec3(0, -100, 100), core.NewVec3(-100, -100, 100))
	if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
		return nil, err
	}

	s := New("basic", camera, geometry.ViewPlane{Distance: 1000, Width: 500, Height: 500}).
		SetBackground(core.NewVec3(75, 127, 90)).
		SetAmbientLight(lights.NewAmbientLight(core.NewVec3(255, 191, 191), 0.2)).
		AddGeometries(sphere, tri1, tri2, tri3, tri4)
	return s, nil
}
