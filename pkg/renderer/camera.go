package renderer

import (
	"math"
	"math/rand"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// CameraConfig holds the parameters a camera is built from
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target position
	Up            core.Vec3 // View-up vector
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane
}

// MergeCameraConfig merges non-zero override fields into a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if !override.LookFrom.Equals(core.Vec3{}) {
		merged.LookFrom = override.LookFrom
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera generates rays for rendering, with a thin-lens model for depth
// of field
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := config.AspectRatio * halfHeight

	origin := config.LookFrom

	// Orthonormal basis: w points from target to eye
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// The viewport is scaled by the focus distance to place the focal plane
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * config.FocusDistance)).
		Subtract(v.Multiply(halfHeight * config.FocusDistance)).
		Subtract(w.Multiply(config.FocusDistance))
	horizontal := u.Multiply(2 * halfWidth * config.FocusDistance)
	vertical := v.Multiply(2 * halfHeight * config.FocusDistance)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
	}
}

// GetRay generates a ray for normalized image-plane coordinates (s, t)
// where 0 <= s,t <= 1. A nonzero aperture offsets the ray origin by a
// random point on the lens disk.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
