package scene

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/material"
)

// NewScene builds a named preset scene and its camera. meshPath is only
// used by the "mesh" preset. An unknown name or an unreadable mesh file
// is a setup-time error, reported before any rendering begins.
func NewScene(name, meshPath string, width, height int) (*Scene, *geometry.Camera, error) {
	switch name {
	case "cornell":
		s, cam := NewCornellScene(width, height)
		return s, cam, nil
	case "spheres":
		s, cam := NewSpheresScene(width, height)
		return s, cam, nil
	case "mesh":
		return NewMeshScene(meshPath, width, height)
	default:
		return nil, nil, fmt.Errorf("unknown scene %q", name)
	}
}

// addQuad adds a quadrilateral as two triangles sharing an edge
func addQuad(b *Builder, v0, v1, v2, v3 core.Vec3, mat material.Material) {
	b.AddTriangle(v0, v1, v2, mat)
	b.AddTriangle(v0, v2, v3, mat)
}

// NewCornellScene creates the classic Cornell box: colored walls, an
// area light in the ceiling and a reflective sphere.
func NewCornellScene(width, height int) (*Scene, *geometry.Camera) {
	b := NewBuilder()

	white := material.Diffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.Diffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.Diffuse(core.NewVec3(0.12, 0.45, 0.15))
	light := material.Light(core.NewVec3(5, 5, 5))

	// Box interior spans x,z in [-1,1] and y in [0,2], open toward +z
	floor0 := core.NewVec3(-1, 0, -1)
	floor1 := core.NewVec3(1, 0, -1)
	floor2 := core.NewVec3(1, 0, 1)
	floor3 := core.NewVec3(-1, 0, 1)
	ceil0 := core.NewVec3(-1, 2, -1)
	ceil1 := core.NewVec3(1, 2, -1)
	ceil2 := core.NewVec3(1, 2, 1)
	ceil3 := core.NewVec3(-1, 2, 1)

	addQuad(b, floor0, floor1, floor2, floor3, white) // floor
	addQuad(b, ceil0, ceil1, ceil2, ceil3, white)     // ceiling
	addQuad(b, floor0, floor1, ceil1, ceil0, white)   // back wall
	addQuad(b, floor0, floor3, ceil3, ceil0, red)     // left wall
	addQuad(b, floor1, floor2, ceil2, ceil1, green)   // right wall

	// Light panel just below the ceiling
	addQuad(b,
		core.NewVec3(-0.24, 1.98, -0.22),
		core.NewVec3(0.24, 1.98, -0.22),
		core.NewVec3(0.24, 1.98, 0.16),
		core.NewVec3(-0.24, 1.98, 0.16),
		light)

	b.AddSphere(core.NewVec3(-0.38, 0.281, 0.38), 0.28,
		material.Reflective(core.NewVec3(0.999, 0.999, 0.999), 0.75))

	b.SetEnvironment(core.NewVec3(0.725, 0.71, 0.68).Multiply(0.1))

	camera := geometry.NewCamera(
		core.NewVec3(0, 1, 3),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		width, height, 50.0)
	camera.SetFocus(core.NewVec3(0, 0, 0), 0.01)

	return b.Build(), camera
}

// NewSpheresScene creates the default preset: three spheres with diffuse,
// Fresnel-glossy and mirror materials over a sphere ground, lit by a
// single sphere light.
func NewSpheresScene(width, height int) (*Scene, *geometry.Camera) {
	b := NewBuilder()

	b.AddSphere(core.NewVec3(0, -1000, -6), 1000,
		material.Diffuse(core.NewVec3(0.5, 0.5, 0.5)))
	b.AddSphere(core.NewVec3(-2.5, 1, -6), 1,
		material.Diffuse(core.NewVec3(0.75, 0.25, 0.25)))
	b.AddSphere(core.NewVec3(0, 1, -6), 1,
		material.ShinyFresnel(core.NewVec3(0.999, 0.999, 0.999), 1.5, 0.05))
	b.AddSphere(core.NewVec3(2.5, 1, -6), 1,
		material.Reflective(core.NewVec3(0.999, 0.999, 0.999), 0.75))
	b.AddSphere(core.NewVec3(0, 6, -4), 1.5,
		material.Light(core.NewVec3(12, 12, 12)))

	b.SetEnvironment(core.NewVec3(0.6, 0.7, 0.9).Multiply(0.25))

	camera := geometry.NewCamera(
		core.NewVec3(0, 2, 2),
		core.NewVec3(0, 1, -6),
		core.NewVec3(0, 1, 0),
		width, height, 50.0)

	return b.Build(), camera
}

// NewMeshScene loads an OBJ mesh as diffuse triangles and places it
// between two sphere lights and a flat backdrop.
func NewMeshScene(path string, width, height int) (*Scene, *geometry.Camera, error) {
	mesh, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading mesh %s: %w", path, err)
	}

	b := NewBuilder()

	meshMat := material.Diffuse(core.NewVec3(0.65, 0.65, 0.65))
	for _, t := range mesh.Triangles {
		b.AddTriangle(
			core.NewVec3(t.V1.Position.X, t.V1.Position.Y, t.V1.Position.Z),
			core.NewVec3(t.V2.Position.X, t.V2.Position.Y, t.V2.Position.Z),
			core.NewVec3(t.V3.Position.X, t.V3.Position.Y, t.V3.Position.Z),
			meshMat)
	}

	lightMat := material.Light(core.NewVec3(4, 4, 4))
	b.AddSphere(core.NewVec3(0.5, 1, 3), 1, lightMat)
	b.AddSphere(core.NewVec3(1, 1, 3), 1, lightMat)

	backdrop := material.Diffuse(core.NewVec3(0.20, 0.30, 0.36))
	tl := core.NewVec3(-5, -5, -1)
	tr := core.NewVec3(5, -5, -1)
	bl := core.NewVec3(-5, 5, -1)
	br := core.NewVec3(5, 5, -1)
	b.AddTriangle(tl, tr, bl, backdrop)
	b.AddTriangle(tr, bl, br, backdrop)

	lookAt := core.NewVec3(1, -0.6, 0.4)
	camera := geometry.NewCamera(
		core.NewVec3(1, -0.45, 4),
		lookAt,
		core.NewVec3(0, 1, 0),
		width, height, 40.0)
	camera.SetFocus(lookAt, 0.01)

	return b.Build(), camera, nil
}
