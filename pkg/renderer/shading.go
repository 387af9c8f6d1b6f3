package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// calcColor returns the color at gp seen along ray: emission plus the local
// Phong terms of every light, plus reflected and refracted light while the
// accumulated contribution k allows. A branch that reaches depth 1 is black.
func (r *Renderer) calcColor(gp geometry.GeoPoint, ray core.Ray, depth int, k float64, sampler core.Sampler) core.Vec3 {
	if depth == 1 {
		return core.Vec3{}
	}

	n := gp.Geometry.NormalAt(gp.Point)
	v := ray.Direction
	m := gp.Geometry.Material()

	color := gp.Geometry.Emission().Add(r.localEffects(gp, n, v, m, k))
	return color.Add(r.globalEffects(gp, n, v, m, depth, k, sampler))
}

// localEffects sums the diffuse and specular terms of every light that
// reaches the visible side of the surface
func (r *Renderer) localEffects(gp geometry.GeoPoint, n, v core.Vec3, m material.Material, k float64) core.Vec3 {
	var color core.Vec3

	nv := core.Sign(n.Dot(v))
	if nv == 0 {
		return color
	}

	for _, light := range r.scene.Lights() {
		l := light.Direction(gp.Point)
		nl := core.Sign(n.Dot(l))
		// The light must hit the same side of the surface the viewer sees
		if nl != nv {
			continue
		}

		ktr := r.transparency(light, l, n, gp)
		if ktr*k <= r.config.MinK {
			continue
		}

		intensity := light.Intensity(gp.Point).Multiply(ktr)
		color = color.Add(diffuse(m.KD, l, n, intensity))
		color = color.Add(specular(m.KS, l, n, v, m.Shininess, intensity))
	}
	return color
}

func diffuse(kd float64, l, n, intensity core.Vec3) core.Vec3 {
	return intensity.Multiply(kd * math.Abs(l.Dot(n)))
}

func specular(ks float64, l, n, v core.Vec3, shininess int, intensity core.Vec3) core.Vec3 {
	reflected := l.Reflect(n)
	return intensity.Multiply(ks * math.Pow(math.Max(0, -v.Dot(reflected)), float64(shininess)))
}

// transparency returns the fraction of light that passes every object
// between the point and the light: the product of their KT, or 0 once it
// drops below MinK
func (r *Renderer) transparency(light lights.LightSource, l, n core.Vec3, gp geometry.GeoPoint) float64 {
	lightRay := core.NewOffsetRay(gp.Point, l.Negate(), n)
	points := r.scene.Geometries().FindIntersections(lightRay)
	if points == nil {
		return 1
	}

	lightDistance := light.Distance(gp.Point)
	ktr := 1.0
	for _, blocker := range points {
		if core.AlignZero(blocker.Point.Distance(gp.Point)-lightDistance) > 0 {
			continue
		}
		m := blocker.Geometry.Material()
		if m.IsOpaque() {
			return 0
		}
		ktr *= m.KT
		if ktr < r.config.MinK {
			return 0
		}
	}
	return ktr
}

// globalEffects traces the reflected and refracted rays. Refraction keeps
// the incoming direction.
func (r *Renderer) globalEffects(gp geometry.GeoPoint, n, v core.Vec3, m material.Material, depth int, k float64, sampler core.Sampler) core.Vec3 {
	var color core.Vec3

	if kkr := k * m.KR; kkr > r.config.MinK {
		reflected := core.NewOffsetRay(gp.Point, v.Reflect(n), n)
		color = color.Add(r.bundleColor(reflected, m.KGlossiness, depth, kkr, sampler).Multiply(m.KR))
	}

	if kkt := k * m.KT; kkt > r.config.MinK {
		refracted := core.NewOffsetRay(gp.Point, v, n)
		color = color.Add(r.bundleColor(refracted, m.KDiffuseGlass, depth, kkt, sampler).Multiply(m.KT))
	}
	return color
}

// bundleColor averages the colors seen along a bundle of rays around ideal.
// A radius of 0 traces the ideal ray alone. Rays that hit nothing add black.
func (r *Renderer) bundleColor(ideal core.Ray, radius float64, depth int, k float64, sampler core.Sampler) core.Vec3 {
	rays := sampleBundle(ideal, radius, r.config.BundleDistance, r.config.BundleSize, sampler)

	var sum core.Vec3
	for _, ray := range rays {
		if gp, ok := r.closestIntersection(ray); ok {
			sum = sum.Add(r.calcColor(gp, ray, depth-1, k, sampler))
		}
	}
	return sum.Reduce(len(rays))
}
