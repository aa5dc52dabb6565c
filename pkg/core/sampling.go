package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed point inside the
// unit ball by rejection sampling over the [-1,1)³ cube. Expected iteration
// count is ~1.91; there is no cap.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a uniformly distributed point inside the unit
// disk on the z=0 plane (for depth of field lens sampling)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
