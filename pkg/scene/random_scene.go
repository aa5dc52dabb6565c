package scene

import (
	"math/rand"

	"github.com/glimmerlab/pathtracer/pkg/core"
	"github.com/glimmerlab/pathtracer/pkg/geometry"
	"github.com/glimmerlab/pathtracer/pkg/material"
	"github.com/glimmerlab/pathtracer/pkg/renderer"
)

// Ground-level positions of the three hero spheres. Small grid spheres are
// never placed within heroClearance of any of them.
var heroPositions = []core.Vec3{
	core.NewVec3(0, 0.2, 0),
	core.NewVec3(-4, 0.2, 0),
	core.NewVec3(4, 0.2, 0),
}

const heroClearance = 0.9

// NewRandomScene creates the classic random sphere field: a large ground
// sphere, a 22x22 grid of small spheres with randomly chosen materials
// (80% diffuse, 15% metal, 5% glass), and three large hero spheres. The
// generator is seeded, so a given seed always produces the same scene.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Sky blue at the zenith
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White at the horizon
		World:          geometry.NewHittableList(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}

	random := rand.New(rand.NewSource(seed))

	groundMat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if tooCloseToHero(center) {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1.0+random.Float64()),
					0.5*(1.0+random.Float64()),
					0.5*(1.0+random.Float64()),
				)
				mat = material.NewMetal(albedo, 0.1)
			default:
				mat = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0,
		material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}

func tooCloseToHero(center core.Vec3) bool {
	for _, hero := range heroPositions {
		if center.Subtract(hero).Length() <= heroClearance {
			return true
		}
	}
	return false
}
