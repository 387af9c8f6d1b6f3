package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 represents a 3D vector. It is used for points, directions and colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewDirection creates a unit direction vector, failing on the zero vector
func NewDirection(x, y, z float64) (Vec3, error) {
	return NewVec3(x, y, z).TryNormalize()
}

func (v Vec3) r3() r3.Vector {
	return r3.Vector(v)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(v.r3().Add(other.r3()))
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3(v.r3().Sub(other.r3()))
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3(v.r3().Mul(scalar))
}

// Reduce divides every component by n. It is used to average color samples.
func (v Vec3) Reduce(n int) Vec3 {
	if n == 0 {
		panic(fmt.Errorf("reduce %v by 0: %w", v, ErrDivisionByZero))
	}
	return v.Multiply(1.0 / float64(n))
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return v.r3().Norm()
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.r3().Norm2()
}

// Distance returns the Euclidean distance between two points
func (v Vec3) Distance(other Vec3) float64 {
	return v.r3().Distance(other.r3())
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.r3().Dot(other.r3())
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(v.r3().Cross(other.r3()))
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// IsZero reports whether every component is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector is a numeric degeneracy and panics with ErrInvalidVector.
func (v Vec3) Normalize() Vec3 {
	n, err := v.TryNormalize()
	if err != nil {
		panic(err)
	}
	return n
}

// TryNormalize returns a unit vector in the same direction or ErrInvalidVector
func (v Vec3) TryNormalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrInvalidVector)
	}
	return v.Multiply(1.0 / length), nil
}

// Ortho returns a unit vector orthogonal to v
func (v Vec3) Ortho() Vec3 {
	if v.IsZero() {
		panic(fmt.Errorf("orthogonal of %v: %w", v, ErrInvalidVector))
	}
	return Vec3(v.r3().Ortho())
}

// Reflect mirrors v about the unit normal n: v - 2(v·n)n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Axis returns the component for axis 0 (X), 1 (Y) or 2 (Z)
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// ApproxEqual reports whether the vectors differ by at most tolerance on every axis
func (v Vec3) ApproxEqual(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
