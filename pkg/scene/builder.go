package scene

import (
	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/material"
)

// Builder assembles a scene from primitive-add operations. The built
// scene owns its primitives and materials for its lifetime.
type Builder struct {
	primitives  []Primitive
	environment core.Vec3
}

// NewBuilder creates an empty scene builder with a black environment
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSphere adds a sphere primitive with the given material
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat material.Material) *Builder {
	b.primitives = append(b.primitives, SpherePrimitive{
		Sphere:   geometry.NewSphere(center, radius),
		Material: mat,
	})
	return b
}

// AddTriangle adds a triangle primitive with the given material
func (b *Builder) AddTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Builder {
	b.primitives = append(b.primitives, TrianglePrimitive{
		Triangle: geometry.NewTriangle(v0, v1, v2),
		Material: mat,
	})
	return b
}

// SetEnvironment sets the color returned by rays that miss every primitive
func (b *Builder) SetEnvironment(color core.Vec3) *Builder {
	b.environment = color
	return b
}

// Build produces the immutable scene
func (b *Builder) Build() *Scene {
	return &Scene{
		Primitives:  b.primitives,
		Environment: b.environment,
	}
}
