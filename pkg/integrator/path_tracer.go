package integrator

import (
	"math/rand"

	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/material"
	"github.com/user/go-sample-pathtracer/pkg/scene"
)

// PathTracer estimates incoming radiance along rays by recursively
// sampling random light-transport paths through the scene.
type PathTracer struct {
	params scene.RenderParams
}

// NewPathTracer creates a path tracer for the given render parameters
func NewPathTracer(params scene.RenderParams) *PathTracer {
	return &PathTracer{params: params}
}

// Radiance estimates the light arriving along the ray. Recursion stops at
// the configured depth cutoff; stratified first-bounce sampling applies
// only at depth 0, deeper bounces take exactly one sample to bound the
// cost of the random walk.
func (pt *PathTracer) Radiance(s *scene.Scene, ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth >= pt.params.MaxDepth {
		return core.Vec3{}
	}

	isect, ok := s.Intersect(ray)
	if !ok {
		return s.Environment
	}

	if pt.params.Preview {
		return isect.Material.Diffuse
	}

	// Local coordinate system at the hit point, W along the normal
	basis := core.NewONBFromW(isect.Hit.Normal)

	numUSamples, numVSamples := 1, 1
	if depth == 0 {
		numUSamples = pt.params.FirstBounceUSamples
		numVSamples = pt.params.FirstBounceVSamples
	}

	var incoming core.Vec3
	for v := 0; v < numVSamples; v++ {
		for u := 0; u < numUSamples; u++ {
			// One jittered sample per stratification cell
			sampleU := (float64(u) + random.Float64()) / float64(numUSamples)
			sampleV := (float64(v) + random.Float64()) / float64(numVSamples)
			incoming = incoming.Add(
				pt.singleRay(s, isect, ray, basis, sampleU, sampleV, depth+1, random))
		}
	}

	mean := incoming.Multiply(1.0 / float64(numUSamples*numVSamples))
	return isect.Material.Emission.Add(mean)
}

// singleRay traces one bounce from the intersection: a cone-perturbed
// mirror reflection with probability equal to the effective reflectivity,
// otherwise a cosine-weighted diffuse bounce attenuated by the albedo.
// Mirror bounces are returned untinted.
func (pt *PathTracer) singleRay(s *scene.Scene, isect scene.Intersection, ray core.Ray,
	basis core.OrthoNormalBasis, u, v float64, depth int, random *rand.Rand) core.Vec3 {

	mat := isect.Material
	hit := isect.Hit
	p := random.Float64()

	reflectivity := pt.effectiveReflectivity(mat, hit.Inside, ray.Direction, hit.Normal)

	if p < reflectivity {
		reflected := core.SampleCone(
			ray.Direction.Reflect(hit.Normal), mat.ReflectionConeAngle, u, v)
		newRay := core.NewRay(hit.Point, reflected)
		return pt.Radiance(s, newRay, depth, random)
	}

	newRay := core.NewRay(hit.Point, core.SampleHemisphereCosine(basis, u, v))
	return mat.Diffuse.MultiplyVec(pt.Radiance(s, newRay, depth, random))
}

// effectiveReflectivity resolves the material's reflectivity tag: either
// the stored constant, or a Fresnel reflectance with the index-of-
// refraction pair swapped for interior hits.
func (pt *PathTracer) effectiveReflectivity(mat material.Material, inside bool,
	direction, normal core.Vec3) float64 {

	if !mat.Reflectivity.IsFresnel() {
		return mat.Reflectivity.Value()
	}

	iorFrom, iorTo := 1.0, mat.IOR
	if inside {
		iorFrom, iorTo = mat.IOR, 1.0
	}
	return material.Fresnel(direction, normal, iorFrom, iorTo)
}
