package scene

import "fmt"

// RenderParams contains the full rendering configuration
type RenderParams struct {
	Width               int   // Image width in pixels
	Height              int   // Image height in pixels
	SamplesPerPixel     int   // Independent full-frame samples to accumulate
	MaxDepth            int   // Recursion depth cutoff for the path tracer
	FirstBounceUSamples int   // Stratification grid width at depth 0
	FirstBounceVSamples int   // Stratification grid height at depth 0
	Preview             bool  // Return raw diffuse color, skipping lighting
	MaxWorkers          int   // Parallel workers (0 = all available CPUs)
	Seed                int64 // Base seed for deterministic rendering
}

// DefaultRenderParams returns sensible default values
func DefaultRenderParams() RenderParams {
	return RenderParams{
		Width:               1920,
		Height:              1080,
		SamplesPerPixel:     40,
		MaxDepth:            5,
		FirstBounceUSamples: 4,
		FirstBounceVSamples: 4,
		MaxWorkers:          0,
		Seed:                1,
	}
}

// Validate fails fast on configurations that cannot render
func (p RenderParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", p.Width, p.Height)
	}
	if p.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", p.SamplesPerPixel)
	}
	if p.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", p.MaxDepth)
	}
	if p.FirstBounceUSamples <= 0 || p.FirstBounceVSamples <= 0 {
		return fmt.Errorf("stratification grid must be at least 1x1, got %dx%d",
			p.FirstBounceUSamples, p.FirstBounceVSamples)
	}
	if p.MaxWorkers < 0 {
		return fmt.Errorf("max workers must be non-negative, got %d", p.MaxWorkers)
	}
	return nil
}
