package material

import (
	"math/rand"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflective color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scatter direction is normal + a random point in the unit sphere,
// which approximates cosine-weighted diffuse reflection. Lambertian
// surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(random))
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
