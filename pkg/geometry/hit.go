package geometry

import "github.com/user/go-sample-pathtracer/pkg/core"

// Hit contains information about a ray-primitive intersection.
// Normal is unit length and always faces the incoming ray's origin side;
// Inside reports that the geometric normal had to be flipped to do so
// (an interior or back-face hit).
type Hit struct {
	T      float64   // Parametric distance along the ray, always > core.Epsilon
	Point  core.Vec3 // World-space intersection point
	Normal core.Vec3 // Unit surface normal, oriented against the ray
	Inside bool      // Whether the geometric normal was flipped
}
