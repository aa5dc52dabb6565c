package geometry

import (
	"math"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// Sphere represents a sphere surface
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// Tangent rays (discriminant == 0) count as a miss
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first; the interval is open at
	// both ends
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)

	// Outward normal is (point - center) / radius. The radius is the true
	// Euclidean distance, so no renormalization is needed.
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		Material: s.Material,
	}, true
}
