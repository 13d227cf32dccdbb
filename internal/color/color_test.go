package color

import "testing"

func TestU8ToF32RoundTrip(t *testing.T) {
	tests := []ColorU8{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 64, 32, 16},
	}
	for _, c := range tests {
		got := F32ToU8(U8ToF32(c))
		if got != c {
			t.Errorf("round trip %v -> %v, want %v", c, got, c)
		}
	}
}

func TestLuminanceWeights(t *testing.T) {
	// Pure channels should recover the standard BT.601 weights.
	if got := Luminance(1, 0, 0); got != 0.299 {
		t.Errorf("Luminance(1,0,0) = %v, want 0.299", got)
	}
	if got := Luminance(0, 1, 0); got != 0.587 {
		t.Errorf("Luminance(0,1,0) = %v, want 0.587", got)
	}
	if got := Luminance(0, 0, 1); got != 0.114 {
		t.Errorf("Luminance(0,0,1) = %v, want 0.114", got)
	}
}

func TestF32ToU8Clamping(t *testing.T) {
	c := F32ToU8(ColorF32{R: -1, G: 2, B: 0.5, A: 0})
	if c.R != 0 || c.G != 255 {
		t.Errorf("expected clamping, got %+v", c)
	}
}
