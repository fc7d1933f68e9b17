package renderer

import (
	"context"

	"github.com/user/go-sample-pathtracer/pkg/core"
	"github.com/user/go-sample-pathtracer/pkg/geometry"
	"github.com/user/go-sample-pathtracer/pkg/scene"
)

// ProgressFunc is called after each completed sample with the number of
// samples done and the total requested
type ProgressFunc func(completed, total int)

// CheckpointFunc persists an intermediate image. It runs on a dedicated
// consumer goroutine fed by a latest-snapshot queue, so a slow save never
// blocks batch dispatch. Errors are logged and never abort the render.
type CheckpointFunc func(fb *FrameBuffer) error

// Renderer runs the parallel sample scheduler: samplesPerPixel
// independent full-frame renders, distributed across a bounded pool of
// workers and summed into a single accumulator buffer.
type Renderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	params     scene.RenderParams
	logger     core.Logger
	checkpoint CheckpointFunc
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(s *scene.Scene, camera *geometry.Camera, params scene.RenderParams, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewStdoutLogger()
	}
	return &Renderer{
		scene:  s,
		camera: camera,
		params: params,
		logger: logger,
	}
}

// SetCheckpoint installs a callback invoked with an accumulator snapshot
// after each completed sample
func (r *Renderer) SetCheckpoint(fn CheckpointFunc) {
	r.checkpoint = fn
}

// Render runs all requested samples and returns the accumulated buffer.
// Samples are processed in batches no larger than the worker count; each
// batch launches one goroutine per sample, and the orchestrating
// goroutine joins them in launch order, merging into the accumulator.
// Workers share only the read-only scene and camera, so no
// synchronization is needed beyond the per-sample result channels.
func (r *Renderer) Render(ctx context.Context, onProgress ProgressFunc) (*FrameBuffer, error) {
	if err := r.params.Validate(); err != nil {
		return nil, err
	}

	workers := ResolveWorkerCount(r.params.MaxWorkers)
	total := r.params.SamplesPerPixel
	r.logger.Printf("Rendering %dx%d, %d samples across %d workers\n",
		r.params.Width, r.params.Height, total, workers)

	queue := newCheckpointQueue(r.checkpoint, r.logger)
	defer queue.Close()

	output := NewFrameBuffer(r.params.Width, r.params.Height)
	seed := r.params.Seed
	numDone := 0

	for sample := 0; sample < total; sample += workers {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batchEnd := min(total, sample+workers)
		futures := make([]chan *FrameBuffer, 0, batchEnd-sample)
		for ss := sample; ss < batchEnd; ss++ {
			future := make(chan *FrameBuffer, 1)
			futures = append(futures, future)
			go func(frameSeed int64) {
				future <- RenderFrame(r.camera, r.scene, frameSeed, r.params)
			}(seed)
			seed++
		}

		for _, future := range futures {
			frame := <-future
			if err := output.Merge(frame); err != nil {
				return nil, err
			}
			numDone++
			r.logger.Printf("Sample %d/%d complete\n", numDone, total)
			if onProgress != nil {
				onProgress(numDone, total)
			}
			queue.Offer(output)
		}
	}

	return output, nil
}
