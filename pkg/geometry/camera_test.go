package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	lookFrom := core.NewVec3(0, 1, 3)
	lookAt := core.NewVec3(0, 1, 0)
	camera := NewCamera(lookFrom, lookAt, core.NewVec3(0, 1, 0), 100, 100, 50.0)

	// The ray through the image center should point toward the look-at
	ray := camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	expected := lookAt.Subtract(lookFrom).Normalize()

	if !vecsEqual(ray.Direction, expected, 1e-9) {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
	if !vecsEqual(ray.Origin, lookFrom, 1e-9) {
		t.Errorf("Expected pinhole origin %v, got %v", lookFrom, ray.Origin)
	}
}

func TestCamera_RandomRayStaysInsidePixel(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		10, 10, 90.0)
	random := rand.New(rand.NewSource(42))

	ray := camera.RandomRay(5, 5, random)
	if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Ray direction not normalized: %f", ray.Direction.Length())
	}
	// The center pixel of a forward camera points roughly down -z
	if ray.Direction.Z >= 0 {
		t.Errorf("Expected ray toward -z, got %v", ray.Direction)
	}
}

func TestCamera_RandomRayIsDeterministic(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		64, 48, 60.0)
	camera.SetFocus(core.NewVec3(0, 0, -5), 0.1)

	a := camera.RandomRay(10, 20, rand.New(rand.NewSource(7)))
	b := camera.RandomRay(10, 20, rand.New(rand.NewSource(7)))

	if a != b {
		t.Errorf("Equal seeds produced different rays: %v vs %v", a, b)
	}
}

func TestCamera_SetFocusOpensAperture(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		64, 48, 60.0)
	camera.SetFocus(core.NewVec3(0, 0, -5), 0.5)

	// With a wide aperture, ray origins scatter across the lens disk
	seen := false
	random := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		if ray.Origin != (core.Vec3{}) {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("Expected offset ray origins with a non-zero aperture")
	}
}
