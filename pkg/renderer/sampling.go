package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// attemptsPerSample bounds rejection sampling to attemptsPerSample·n candidates
const attemptsPerSample = 10

// sampleBundle returns the ideal ray followed by up to n-1 rays from the same
// origin through random points of a disc of the given radius, centered
// distance ahead on the ideal ray and facing it
func sampleBundle(ideal core.Ray, radius, distance float64, n int, sampler core.Sampler) []core.Ray {
	rays := []core.Ray{ideal}
	if radius <= 0 || n <= 1 {
		return rays
	}

	u := ideal.Direction.Ortho()
	w := ideal.Direction.Cross(u)
	center := ideal.At(distance)

	for attempt := 0; attempt < attemptsPerSample*n && len(rays) < n; attempt++ {
		s := core.SampleSquare(sampler.Get2D(), radius)
		if s.X*s.X+s.Y*s.Y > radius*radius {
			continue
		}
		target := center.Add(u.Multiply(s.X)).Add(w.Multiply(s.Y))
		rays = append(rays, core.NewRay(ideal.Origin, target.Subtract(ideal.Origin)))
	}
	return rays
}
