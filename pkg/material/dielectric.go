package material

import (
	"math"
	"math/rand"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray either reflects or refracts; it is never absorbed, and clear
// glass does not attenuate.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	reflected := Reflect(rayIn.Direction, hit.Normal)

	// The sign of direction·normal tells us whether the ray is entering
	// or exiting the surface
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if rayIn.Direction.Dot(hit.Normal) > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	}

	// Total internal reflection forces the reflection probability to 1
	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, niOverNt)
	reflectProb := 1.0
	if canRefract {
		reflectProb = math.Min(1.0, math.Max(0.0, Schlick(cosine, d.RefractiveIndex)))
	}

	if random.Float64() < reflectProb {
		return core.ScatterResult{
			Scattered:   core.NewRay(hit.Point, reflected),
			Attenuation: attenuation,
		}, true
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, refracted),
		Attenuation: attenuation,
	}, true
}
