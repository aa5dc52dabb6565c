package scene

import (
	"github.com/glimmerlab/pathtracer/pkg/core"
	"github.com/glimmerlab/pathtracer/pkg/geometry"
	"github.com/glimmerlab/pathtracer/pkg/renderer"
)

// Scene holds everything a render needs: the world geometry, the camera,
// the background gradient colors, and the sampling configuration. It is
// built once and read-only during rendering.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	TopColor       core.Vec3
	BottomColor    core.Vec3
	World          *geometry.HittableList
	SamplingConfig renderer.SamplingConfig
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the zenith and horizon colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns the scene geometry
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

var _ renderer.Scene = (*Scene)(nil)
