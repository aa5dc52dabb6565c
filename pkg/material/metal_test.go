package material

import (
	"math/rand"
	"testing"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"valid fuzz 0.0", 0.0, 0.0},
		{"valid fuzz 0.5", 0.5, 0.5},
		{"valid fuzz 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.3, 0.0},
		{"clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	// Ray hitting the surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter a 45-degree incoming ray")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v",
			albedo, scatter.Attenuation)
	}
}

func TestMetal_GrazingRayAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	// Incoming direction parallel to the surface reflects to itself, and
	// dot(scattered, normal) == 0 fails the strict hemisphere check
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 1, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	if _, didScatter := metal.Scatter(rayIn, hit, random); didScatter {
		t.Error("Expected grazing ray to be absorbed")
	}
}

func TestMetal_FuzzPerturbsReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	mirror := core.NewVec3(0, 0, 1)
	perturbed := false
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			continue
		}
		if scatter.Scattered.Direction.Normalize().Subtract(mirror).Length() > 1e-9 {
			perturbed = true
		}
	}

	if !perturbed {
		t.Error("Fuzzy metal never deviated from the mirror direction")
	}
}
