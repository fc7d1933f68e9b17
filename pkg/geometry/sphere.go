package geometry

import (
	"math"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere and returns the nearest hit
// beyond the epsilon threshold, if any.
func (s Sphere) Intersect(ray core.Ray) (Hit, bool) {
	// Solve t²(d·d) + 2t(o−c)·d + (o−c)·(o−c) − r² = 0
	op := s.Center.Subtract(ray.Origin)
	b := op.Dot(ray.Direction)
	discriminant := b*b - op.LengthSquared() + s.Radius*s.Radius

	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	minusT := b - sqrtD
	plusT := b + sqrtD

	// When the near root is below threshold the ray origin is inside or
	// touching the sphere; fall back to the far root.
	if minusT < core.Epsilon && plusT < core.Epsilon {
		return Hit{}, false
	}
	t := plusT
	if minusT > core.Epsilon {
		t = minusT
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Normalize()
	inside := false
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
		inside = true
	}

	return Hit{T: t, Point: point, Normal: normal, Inside: inside}, true
}
