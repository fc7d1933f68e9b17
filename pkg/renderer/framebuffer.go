package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

// FrameBuffer is a width×height grid of unnormalized summed radiance,
// together with the number of full-frame samples accumulated into it.
// Buffers of identical dimensions merge by elementwise addition, which is
// commutative and associative, so parallel merge order does not affect
// the result beyond floating-point rounding.
type FrameBuffer struct {
	width, height int
	pixels        []core.Vec3
	samples       int
}

// NewFrameBuffer creates an empty frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// Samples returns the number of full-frame samples accumulated so far
func (fb *FrameBuffer) Samples() int { return fb.samples }

func (fb *FrameBuffer) indexOf(x, y int) int {
	return y*fb.width + x
}

// AddSample accumulates a radiance sample into the pixel at (x, y)
func (fb *FrameBuffer) AddSample(x, y int, radiance core.Vec3) {
	i := fb.indexOf(x, y)
	fb.pixels[i] = fb.pixels[i].Add(radiance)
}

// RawAt returns the unnormalized summed radiance at (x, y)
func (fb *FrameBuffer) RawAt(x, y int) core.Vec3 {
	return fb.pixels[fb.indexOf(x, y)]
}

// At returns the 8-bit display color at (x, y): the sample mean, clamped
// and gamma corrected at 2.2
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	samples := fb.samples
	if samples < 1 {
		samples = 1
	}
	mean := fb.RawAt(x, y).Multiply(1.0 / float64(samples))
	corrected := mean.Clamp(0, 1).GammaCorrect(2.2)
	return color.RGBA{
		R: uint8(corrected.X*255 + 0.5),
		G: uint8(corrected.Y*255 + 0.5),
		B: uint8(corrected.Z*255 + 0.5),
		A: 255,
	}
}

// Merge accumulates another buffer of identical dimensions into this one
func (fb *FrameBuffer) Merge(other *FrameBuffer) error {
	if fb.width != other.width || fb.height != other.height {
		return fmt.Errorf("cannot merge %dx%d buffer into %dx%d buffer",
			other.width, other.height, fb.width, fb.height)
	}
	for i, p := range other.pixels {
		fb.pixels[i] = fb.pixels[i].Add(p)
	}
	fb.samples += other.samples
	return nil
}

// Clone returns an independent copy of the buffer
func (fb *FrameBuffer) Clone() *FrameBuffer {
	clone := NewFrameBuffer(fb.width, fb.height)
	copy(clone.pixels, fb.pixels)
	clone.samples = fb.samples
	return clone
}

// ToImage converts the buffer to a displayable RGBA image
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.At(x, y))
		}
	}
	return img
}
