package renderer

import (
	"math/rand"

	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/integrator"
	"github.com/user/go-sample-pathtracer/pkg/scene"
)

// pixelSeed derives a deterministic per-pixel seed from the frame seed
// and the pixel coordinates. The formula is stable within this
// implementation, not across reimplementations.
func pixelSeed(width, height int, seed int64, x, y int) int64 {
	return int64(width)*int64(height)*seed + int64(x*width+y)
}

// RenderFrame renders one full-frame sample: one jittered camera ray per
// pixel, traced at depth 0. Each pixel owns a private random generator
// seeded from the frame seed and its coordinates, so repeated calls with
// the same seed are reproducible.
func RenderFrame(camera *geometry.Camera, s *scene.Scene, seed int64, params scene.RenderParams) *FrameBuffer {
	fb := NewFrameBuffer(params.Width, params.Height)
	tracer := integrator.NewPathTracer(params)

	for y := 0; y < params.Height; y++ {
		for x := 0; x < params.Width; x++ {
			random := rand.New(rand.NewSource(pixelSeed(params.Width, params.Height, seed, x, y)))
			ray := camera.RandomRay(x, y, random)
			fb.AddSample(x, y, tracer.Radiance(s, ray, 0, random))
		}
	}

	fb.samples = 1
	return fb
}
