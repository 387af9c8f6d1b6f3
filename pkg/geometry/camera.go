package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidCamera is returned when the camera basis vectors are unusable
var ErrInvalidCamera = errors.New("invalid camera")

// ViewPlane is the image plane in front of the camera
type ViewPlane struct {
	Distance float64 // Distance from the camera location along VTo
	Width    float64 // Physical width of the plane
	Height   float64 // Physical height of the plane
}

// Camera generates primary rays through a pixel grid on the view plane
type Camera struct {
	Location core.Vec3
	VTo      core.Vec3 // Forward
	VUp      core.Vec3 // Up
	VRight   core.Vec3 // VTo × VUp
}

// NewCamera creates a camera at location looking along vTo. vUp must be
// orthogonal to vTo.
func NewCamera(location, vTo, vUp core.Vec3) (*Camera, error) {
	to, err := vTo.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: forward vector: %w", ErrInvalidCamera, err)
	}
	up, err := vUp.TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector: %w", ErrInvalidCamera, err)
	}
	if !core.IsZero(to.Dot(up)) {
		return nil, fmt.Errorf("%w: forward %v and up %v are not orthogonal", ErrInvalidCamera, vTo, vUp)
	}
	return &Camera{
		Location: location,
		VTo:      to,
		VUp:      up,
		VRight:   to.Cross(up),
	}, nil
}

// ViewPlaneCenter returns the point where the forward axis meets the view plane
func (c *Camera) ViewPlaneCenter(vp ViewPlane) core.Vec3 {
	return c.Location.Add(c.VTo.Multiply(vp.Distance))
}

// ConstructRay returns the ray from the camera through the center of pixel
// (col, row) of an nx by ny grid laid over the view plane. Row 0 is the top.
func (c *Camera) ConstructRay(nx, ny, col, row int, vp ViewPlane) core.Ray {
	rx := vp.Width / float64(nx)
	ry := vp.Height / float64(ny)
	xj := (float64(col)-float64(nx)/2)*rx + rx/2
	yi := (float64(row)-float64(ny)/2)*ry + ry/2

	pij := c.ViewPlaneCenter(vp)
	if !core.IsZero(xj) {
		pij = pij.Add(c.VRight.Multiply(xj))
	}
	if !core.IsZero(yi) {
		pij = pij.Add(c.VUp.Multiply(-yi))
	}
	return core.NewRay(c.Location, pij.Subtract(c.Location))
}
