package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Outward surface normal at the intersection, unit length
	Material Material // Material of the hit object
}

// Hittable is any surface a ray can intersect
type Hittable interface {
	// Hit returns the closest intersection strictly inside (tMin, tMax),
	// or false if the surface is not struck in that range.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material decides how a ray scatters when it hits a surface
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false if
	// the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Logger interface for renderer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
