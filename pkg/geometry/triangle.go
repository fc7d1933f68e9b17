package geometry

import (
	"github.com/user/go-sample-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3 // Cached unit normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: edge1.Cross(edge2).Normalize(),
	}
}

// Normal returns the triangle's geometric unit normal
func (t Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm, with the same epsilon and normal-orientation conventions as
// the sphere test.
func (t Triangle) Intersect(ray core.Ray) (Hit, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if a > -core.Epsilon && a < core.Epsilon {
		return Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	dist := f * edge2.Dot(q)
	if dist < core.Epsilon {
		return Hit{}, false
	}

	normal := t.normal
	inside := false
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
		inside = true
	}

	return Hit{T: dist, Point: ray.At(dist), Normal: normal, Inside: inside}, true
}
