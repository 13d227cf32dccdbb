package light

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/swgl/internal/color"
)

// FogMode selects the depth-to-blend-factor curve.
type FogMode uint8

const (
	FogLinear FogMode = iota
	FogExp
	FogExp2
)

// Fog holds the post-lighting, pre-write fog parameters.
type Fog struct {
	Mode       FogMode
	Density    float32
	Start, End float32
	Color      color.ColorF32
}

// DefaultFog matches the fixed-function defaults: linear fog from 0 to 1,
// density 1, fog color black.
func DefaultFog() Fog {
	return Fog{Mode: FogLinear, Density: 1, Start: 0, End: 1}
}

// factor computes t in [0,1], the fraction of fog accumulated by eye-space
// depth z (0 = no fog, 1 = fully fogged).
func (f Fog) factor(z float32) float32 {
	var t float32
	switch f.Mode {
	case FogExp:
		t = 1 - math32.Exp(-f.Density*z)
	case FogExp2:
		dz := f.Density * z
		t = 1 - math32.Exp(-dz*dz)
	default:
		if f.End == f.Start {
			t = 0
		} else {
			t = (z - f.Start) / (f.End - f.Start)
		}
	}
	return clamp01(t)
}

// Apply blends fog.Color over frag by t*fog.Color.A, where t is the fog
// factor at eye-space depth z: a fully transparent fog color never
// attenuates the fragment, regardless of how fogged it is.
func Apply(frag color.ColorF32, z float32, f Fog) color.ColorF32 {
	blend := f.factor(z) * f.Color.A
	return color.ColorF32{
		R: frag.R + (f.Color.R-frag.R)*blend,
		G: frag.G + (f.Color.G-frag.G)*blend,
		B: frag.B + (f.Color.B-frag.B)*blend,
		A: frag.A,
	}
}
