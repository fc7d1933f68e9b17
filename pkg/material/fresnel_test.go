package material

import (
	"math"
	"testing"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

func TestFresnel_NormalIncidence(t *testing.T) {
	// At normal incidence air->glass reflects (n1-n2)²/(n1+n2)² ≈ 0.04
	incoming := core.NewVec3(0, 0, -1)
	normal := core.NewVec3(0, 0, 1)

	got := Fresnel(incoming, normal, 1.0, 1.5)
	expected := math.Pow((1.0-1.5)/(1.0+1.5), 2)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %f, got %f", expected, got)
	}
}

func TestFresnel_GrazingIncidence(t *testing.T) {
	// Reflectance approaches 1 at grazing angles
	incoming := core.NewVec3(1, 0, -0.01).Normalize()
	normal := core.NewVec3(0, 0, 1)

	got := Fresnel(incoming, normal, 1.0, 1.5)
	if got < 0.9 {
		t.Errorf("Expected near-total reflection at grazing incidence, got %f", got)
	}
}

func TestFresnel_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a steep angle exceeds the critical angle
	incoming := core.NewVec3(1, 0, -0.3).Normalize()
	normal := core.NewVec3(0, 0, 1)

	got := Fresnel(incoming, normal, 1.5, 1.0)
	if got != 1.0 {
		t.Errorf("Expected total internal reflection (1.0), got %f", got)
	}
}

func TestFresnel_RangeAcrossAngles(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	for angle := 0.0; angle < math.Pi/2; angle += 0.05 {
		incoming := core.NewVec3(math.Sin(angle), 0, -math.Cos(angle))
		got := Fresnel(incoming, normal, 1.0, 1.5)
		if got < 0 || got > 1 {
			t.Fatalf("Reflectance out of [0,1] at angle %f: %f", angle, got)
		}
	}
}
