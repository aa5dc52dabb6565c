package material

import (
	"math"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// Reflect calculates the mirror reflection of v off a surface with normal n:
// r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of v through a surface with outward
// normal n using Snell's law. Returns false when refraction is geometrically
// impossible (total internal reflection).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).
		Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick approximates the Fresnel reflectance for a dielectric surface
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
