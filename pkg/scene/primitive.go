package scene

import (
	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/material"
)

// Primitive is a closed variant over the supported shapes, each carrying
// its material. The interface is sealed so intersection can be dispatched
// with an exhaustive type switch; new primitive kinds are added here, at
// compile time, not by open extension.
type Primitive interface {
	sealedPrimitive()
}

// SpherePrimitive is a sphere tagged with a material
type SpherePrimitive struct {
	Sphere   geometry.Sphere
	Material material.Material
}

// TrianglePrimitive is a triangle tagged with a material
type TrianglePrimitive struct {
	Triangle geometry.Triangle
	Material material.Material
}

func (SpherePrimitive) sealedPrimitive()   {}
func (TrianglePrimitive) sealedPrimitive() {}

// intersectPrimitive dispatches the ray to the primitive's own analytic
// intersection test and pairs the hit with the primitive's material.
func intersectPrimitive(p Primitive, ray core.Ray) (Intersection, bool) {
	switch prim := p.(type) {
	case SpherePrimitive:
		if hit, ok := prim.Sphere.Intersect(ray); ok {
			return Intersection{Hit: hit, Material: prim.Material}, true
		}
	case TrianglePrimitive:
		if hit, ok := prim.Triangle.Intersect(ray); ok {
			return Intersection{Hit: hit, Material: prim.Material}, true
		}
	}
	return Intersection{}, false
}
