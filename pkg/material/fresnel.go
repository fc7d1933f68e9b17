package material

import (
	"math"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

// Fresnel computes the fraction of light reflected at a boundary between
// media with the given indices of refraction, using the full Fresnel
// equations (average of the perpendicular and parallel polarizations).
// incoming is the unit ray direction arriving at the surface, normal the
// unit surface normal facing against it. Total internal reflection
// returns 1.
func Fresnel(incoming, normal core.Vec3, iorFrom, iorTo float64) float64 {
	iorRatio := iorFrom / iorTo
	cosTheta := -incoming.Dot(normal)

	sinSquaredTheta := iorRatio * iorRatio * (1 - cosTheta*cosTheta)
	if sinSquaredTheta > 1 {
		return 1.0
	}
	cosOtherTheta := math.Sqrt(1 - sinSquaredTheta)

	rPerp := (iorFrom*cosTheta - iorTo*cosOtherTheta) /
		(iorFrom*cosTheta + iorTo*cosOtherTheta)
	rPar := (iorTo*cosTheta - iorFrom*cosOtherTheta) /
		(iorTo*cosTheta + iorFrom*cosOtherTheta)

	return (rPerp*rPerp + rPar*rPar) / 2
}
