package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/user/go-sample-pathtracer/pkg/renderer"
	"github.com/user/go-sample-pathtracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "cornell", "Scene preset: 'cornell', 'spheres' or 'mesh'")
	meshPath := flag.String("mesh", "", "OBJ file for the 'mesh' scene")
	width := flag.Int("width", 1920, "Output image width")
	height := flag.Int("height", 1080, "Output image height")
	spp := flag.Int("spp", 40, "Samples per pixel")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = all CPUs)")
	depth := flag.Int("depth", 5, "Maximum ray bounce depth")
	strataU := flag.Int("strata-u", 4, "First bounce stratification grid width")
	strataV := flag.Int("strata-v", 4, "First bounce stratification grid height")
	preview := flag.Bool("preview", false, "Quick preview without lighting")
	seed := flag.Int64("seed", 1, "Random seed")
	output := flag.String("output", "image.png", "Output PNG file")
	saveEvery := flag.Duration("save-every", 10*time.Second, "Interval between checkpoint saves")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Monte Carlo path tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cornell - Cornell box with a reflective sphere")
		fmt.Println("  spheres - Diffuse, glossy and mirror spheres under a sphere light")
		fmt.Println("  mesh    - OBJ mesh (set -mesh) between two sphere lights")
		return
	}

	params := scene.RenderParams{
		Width:               *width,
		Height:              *height,
		SamplesPerPixel:     *spp,
		MaxDepth:            *depth,
		FirstBounceUSamples: *strataU,
		FirstBounceVSamples: *strataV,
		Preview:             *preview,
		MaxWorkers:          *workers,
		Seed:                *seed,
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(1)
	}

	selectedScene, camera, err := scene.NewScene(*sceneName, *meshPath, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scene setup failed: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(selectedScene, camera, params, renderer.NewStdoutLogger())

	// Checkpoint-save at most once per interval; the snapshot queue runs
	// this off the render loop, so slow disks cannot stall a batch.
	nextSave := time.Now().Add(*saveEvery)
	r.SetCheckpoint(func(fb *renderer.FrameBuffer) error {
		if time.Now().Before(nextSave) {
			return nil
		}
		nextSave = time.Now().Add(*saveEvery)
		return savePNG(*output, fb.ToImage())
	})

	startTime := time.Now()
	result, err := r.Render(context.Background(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := savePNG(*output, result.ToImage()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *output)
}

func savePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
