package texture

import (
	"testing"

	"github.com/gogpu/swgl/internal/pixelfmt"
)

func checker(size int) *Texture {
	t := New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				t.Set(x, y, pixelfmt.Color{R: 255, G: 255, B: 255, A: 255})
			} else {
				t.Set(x, y, pixelfmt.Color{A: 255})
			}
		}
	}
	return t
}

func TestSampleNearestReturnsExactTexel(t *testing.T) {
	tex := New(2, 2)
	tex.Set(0, 0, pixelfmt.Color{R: 255})
	tex.Set(1, 0, pixelfmt.Color{G: 255})

	got := tex.Sample(0.25, 0.25)
	if got.R != 255 {
		t.Errorf("expected top-left texel, got %v", got)
	}
	got = tex.Sample(0.75, 0.25)
	if got.G != 255 {
		t.Errorf("expected top-right texel, got %v", got)
	}
}

func TestRepeatWrapsCoordinates(t *testing.T) {
	tex := New(4, 4)
	tex.Wrap = Repeat
	tex.Set(0, 0, pixelfmt.Color{R: 42})
	got := tex.At(4, 0) // wraps to (0,0) for POT size 4
	if got.R != 42 {
		t.Errorf("expected repeat wrap to map x=4 to x=0, got %v", got)
	}
}

func TestRepeatWrapsNonPowerOfTwoViaModulo(t *testing.T) {
	tex := New(3, 3)
	tex.Wrap = Repeat
	tex.Set(0, 0, pixelfmt.Color{R: 7})
	got := tex.At(3, 0)
	if got.R != 7 {
		t.Errorf("expected modulo wrap to map x=3 to x=0 for width 3, got %v", got)
	}
	got = tex.At(-1, 0)
	if got.R != 0 {
		// -1 wraps to width-1=2, which was never set (still zero).
		t.Errorf("expected x=-1 to wrap to x=2 (unset), got %v", got)
	}
}

func TestClampClampsToEdge(t *testing.T) {
	tex := New(4, 4)
	tex.Wrap = Clamp
	tex.Set(3, 3, pixelfmt.Color{B: 99})
	got := tex.At(10, 10)
	if got.B != 99 {
		t.Errorf("expected clamp to pin to the last texel, got %v", got)
	}
}

func TestBilinearInterpolatesBetweenTexels(t *testing.T) {
	tex := New(2, 1)
	tex.Filter = Bilinear
	tex.Set(0, 0, pixelfmt.Color{R: 0})
	tex.Set(1, 0, pixelfmt.Color{R: 200})

	got := tex.Sample(0.5, 0.5)
	if got.R < 50 || got.R > 150 {
		t.Errorf("expected bilinear blend between 0 and 200, got %v", got.R)
	}
}

func TestSampleZeroSizedTextureReturnsZeroColor(t *testing.T) {
	tex := &Texture{}
	got := tex.Sample(0.5, 0.5)
	if got != (pixelfmt.Color{}) {
		t.Errorf("expected zero color for empty texture, got %v", got)
	}
}

func TestCheckerTextureAltersAcrossNeighbors(t *testing.T) {
	tex := checker(8)
	a := tex.At(0, 0)
	b := tex.At(1, 0)
	if a == b {
		t.Error("expected adjacent checker texels to differ")
	}
}
