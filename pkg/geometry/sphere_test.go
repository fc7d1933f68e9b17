package geometry

import (
	"math"
	"testing"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

const tolerance = 1e-9

func vecsEqual(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_FromOutside(t *testing.T) {
	// A ray aimed at the center hits at originDistance - radius
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-4.0) > tolerance {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if hit.Inside {
		t.Error("Exterior hit reported as inside")
	}

	// Normal is parallel to (hitPoint - center)
	outward := hit.Point.Subtract(sphere.Center).Normalize()
	if !vecsEqual(hit.Normal, outward, tolerance) {
		t.Errorf("Expected normal %v, got %v", outward, hit.Normal)
	}
	if math.Abs(hit.Normal.Length()-1.0) > tolerance {
		t.Errorf("Normal not unit length: %f", hit.Normal.Length())
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	// Origin inside the sphere: the hit is the far-side exit point and
	// the normal is flipped back toward the origin side
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0)
	ray := core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(1, 0, 0))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-1.5) > tolerance {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}
	if !hit.Inside {
		t.Error("Interior hit not reported as inside")
	}
	if !vecsEqual(hit.Normal, core.NewVec3(-1, 0, 0), tolerance) {
		t.Errorf("Expected flipped normal (-1,0,0), got %v", hit.Normal)
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Error("Normal does not face against the ray")
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	// Sphere entirely behind the ray origin: both roots negative
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss for sphere behind ray, got t=%f", hit.T)
	}
}

func TestSphere_Intersect_NormalFacesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"head on", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
		{"from inside", core.NewVec3(0, 0, -3), core.NewVec3(0, 1, 0)},
		{"glancing", core.NewVec3(0.9, 0, 0), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			hit, ok := sphere.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Errorf("Normal %v points along ray %v", hit.Normal, ray.Direction)
			}
		})
	}
}
