package core

import (
	"math"
	"math/rand"
)

// SampleHemisphereCosine returns a cosine-weighted direction in the
// hemisphere above the basis' W axis. u and v are uniform samples in [0,1);
// stratified callers pass jittered grid-cell values.
func SampleHemisphereCosine(basis OrthoNormalBasis, u, v float64) Vec3 {
	theta := 2 * math.Pi * u
	radius := math.Sqrt(v)
	return basis.Transform(NewVec3(
		math.Cos(theta)*radius,
		math.Sin(theta)*radius,
		math.Sqrt(1-v),
	)).Normalize()
}

// SampleCone returns a direction within a cone of the given half-angle
// around the axis. A half-angle of zero returns the axis unchanged, which
// makes a reflective bounce a perfect mirror.
func SampleCone(axis Vec3, halfAngle, u, v float64) Vec3 {
	if halfAngle < Epsilon {
		return axis
	}

	// Bias samples toward the cone axis so small cones stay tight
	angle := halfAngle * (1.0 - (2.0 * math.Acos(u) / math.Pi))
	radius := math.Sin(angle)
	z := math.Cos(angle)
	theta := 2 * math.Pi * v

	basis := NewONBFromW(axis)
	return basis.Transform(NewVec3(
		math.Cos(theta)*radius,
		math.Sin(theta)*radius,
		z,
	)).Normalize()
}

// RandomInUnitDisk generates a random point in a unit disk, used to
// sample the camera lens aperture for depth of field
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
