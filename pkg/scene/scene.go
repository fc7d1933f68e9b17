package scene

import (
	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/material"
)

// Scene is an immutable collection of primitives plus a uniform
// environment color returned when a ray escapes with no hit. It is built
// once before rendering and shared read-only across all render workers.
type Scene struct {
	Primitives  []Primitive
	Environment core.Vec3
}

// Intersection is the result of a successful scene intersection: the hit
// together with the material of the primitive that produced it.
type Intersection struct {
	Hit      geometry.Hit
	Material material.Material
}

// Intersect scans all primitives and returns the nearest intersection by
// smallest positive t, or false if nothing qualifies. The scan is a
// deliberate brute-force linear pass with no acceleration structure.
func (s *Scene) Intersect(ray core.Ray) (Intersection, bool) {
	var nearest Intersection
	found := false

	for _, primitive := range s.Primitives {
		if candidate, ok := intersectPrimitive(primitive, ray); ok {
			if !found || candidate.Hit.T < nearest.Hit.T {
				nearest = candidate
				found = true
			}
		}
	}

	return nearest, found
}
