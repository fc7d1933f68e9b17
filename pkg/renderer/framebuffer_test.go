package renderer

import (
	"math/rand"
	"testing"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

func randomBuffer(width, height int, seed int64) *FrameBuffer {
	random := rand.New(rand.NewSource(seed))
	fb := NewFrameBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fb.AddSample(x, y, core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
		}
	}
	fb.samples = 1
	return fb
}

func buffersEqual(a, b *FrameBuffer) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Samples() != b.Samples() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.RawAt(x, y) != b.RawAt(x, y) {
				return false
			}
		}
	}
	return true
}

func TestFrameBuffer_MergeIsCommutative(t *testing.T) {
	a1 := randomBuffer(8, 6, 1)
	b1 := randomBuffer(8, 6, 2)
	a2 := randomBuffer(8, 6, 1)
	b2 := randomBuffer(8, 6, 2)

	if err := a1.Merge(b1); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := b2.Merge(a2); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !buffersEqual(a1, b2) {
		t.Error("merge(A,B) != merge(B,A)")
	}
}

func TestFrameBuffer_MergeIsAssociative(t *testing.T) {
	// merge(A, merge(B, C)) == merge(merge(A, B), C)
	left := randomBuffer(8, 6, 1)
	leftBC := randomBuffer(8, 6, 2)
	if err := leftBC.Merge(randomBuffer(8, 6, 3)); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := left.Merge(leftBC); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	right := randomBuffer(8, 6, 1)
	if err := right.Merge(randomBuffer(8, 6, 2)); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := right.Merge(randomBuffer(8, 6, 3)); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !buffersEqual(left, right) {
		t.Error("merge(A, merge(B,C)) != merge(merge(A,B), C)")
	}
}

func TestFrameBuffer_MergeRejectsMismatchedDimensions(t *testing.T) {
	a := NewFrameBuffer(8, 6)
	b := NewFrameBuffer(6, 8)
	if err := a.Merge(b); err == nil {
		t.Error("Expected an error merging mismatched buffers")
	}
}

func TestFrameBuffer_MergeAccumulatesSamples(t *testing.T) {
	a := randomBuffer(4, 4, 1)
	if err := a.Merge(randomBuffer(4, 4, 2)); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if a.Samples() != 2 {
		t.Errorf("Expected 2 samples after merge, got %d", a.Samples())
	}
}

func TestFrameBuffer_At8BitConversion(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.AddSample(0, 0, core.NewVec3(1, 0, 0.5))
	fb.samples = 1

	got := fb.At(0, 0)
	if got.R != 255 {
		t.Errorf("Full red should map to 255, got %d", got.R)
	}
	if got.G != 0 {
		t.Errorf("Zero green should map to 0, got %d", got.G)
	}
	// Gamma 2.2 brightens mid-range values
	if got.B <= 127 {
		t.Errorf("Gamma-corrected 0.5 should exceed linear 127, got %d", got.B)
	}
	if got.A != 255 {
		t.Errorf("Alpha should be opaque, got %d", got.A)
	}
}

func TestFrameBuffer_AtNormalizesBySamples(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.AddSample(0, 0, core.NewVec3(2, 2, 2))
	fb.samples = 2

	got := fb.At(0, 0)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Mean of 1.0 should map to white, got %v", got)
	}
}

func TestFrameBuffer_CloneIsIndependent(t *testing.T) {
	original := randomBuffer(4, 4, 5)
	clone := original.Clone()

	if !buffersEqual(original, clone) {
		t.Fatal("Clone differs from original")
	}

	original.AddSample(0, 0, core.NewVec3(1, 1, 1))
	if buffersEqual(original, clone) {
		t.Error("Mutating the original changed the clone")
	}
}
