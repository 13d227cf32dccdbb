// Package blend implements the predefined fragment blend functions and the
// depth comparison predicates the rasterizer consults before every pixel
// write.
//
// Colors here are straight (non-premultiplied) 8-bit channels, the working
// representation the pixel format registry produces and consumes at the
// framebuffer boundary.
package blend

import "github.com/gogpu/swgl/internal/pixelfmt"

// Mode selects one of the predefined blend functions.
type Mode uint8

const (
	// AlphaOver is the default: standard over compositing.
	AlphaOver Mode = iota
	// Additive saturating-adds each channel.
	Additive
	// Multiplicative multiplies src and dst per channel, normalized by 255.
	Multiplicative
	// Subtractive saturating-subtracts src from dst per channel.
	Subtractive
	// Screen is 1 - (1-src)*(1-dst) per channel.
	Screen
	// Replace writes src unchanged, ignoring dst.
	Replace
)

func (m Mode) String() string {
	switch m {
	case AlphaOver:
		return "ALPHA_OVER"
	case Additive:
		return "ADDITIVE"
	case Multiplicative:
		return "MULTIPLICATIVE"
	case Subtractive:
		return "SUBTRACTIVE"
	case Screen:
		return "SCREEN"
	case Replace:
		return "REPLACE"
	default:
		return "UNKNOWN_BLEND_MODE"
	}
}

// Func blends src over dst and returns the resulting color.
type Func func(src, dst pixelfmt.Color) pixelfmt.Color

// Lookup returns the blend function for mode, defaulting to AlphaOver for
// an unrecognized mode.
func Lookup(m Mode) Func {
	switch m {
	case Additive:
		return blendAdditive
	case Multiplicative:
		return blendMultiplicative
	case Subtractive:
		return blendSubtractive
	case Screen:
		return blendScreenColor
	case Replace:
		return blendReplace
	default:
		return blendAlphaOver
	}
}

// blendAlphaOver implements out.rgb = src.rgb*src.a/255 + dst.rgb*(255-src.a)/255,
// out.a = src.a + dst.a*(255-src.a)/255.
func blendAlphaOver(src, dst pixelfmt.Color) pixelfmt.Color {
	invSa := 255 - src.A
	return pixelfmt.Color{
		R: addDiv255(mulDiv255(src.R, src.A), mulDiv255(dst.R, invSa)),
		G: addDiv255(mulDiv255(src.G, src.A), mulDiv255(dst.G, invSa)),
		B: addDiv255(mulDiv255(src.B, src.A), mulDiv255(dst.B, invSa)),
		A: addDiv255(src.A, mulDiv255(dst.A, invSa)),
	}
}

func blendAdditive(src, dst pixelfmt.Color) pixelfmt.Color {
	return pixelfmt.Color{
		R: clampAdd(src.R, dst.R),
		G: clampAdd(src.G, dst.G),
		B: clampAdd(src.B, dst.B),
		A: clampAdd(src.A, dst.A),
	}
}

func blendMultiplicative(src, dst pixelfmt.Color) pixelfmt.Color {
	return pixelfmt.Color{
		R: mulDiv255(src.R, dst.R),
		G: mulDiv255(src.G, dst.G),
		B: mulDiv255(src.B, dst.B),
		A: mulDiv255(src.A, dst.A),
	}
}

// blendSubtractive computes dst - src, saturating at 0. This gives a
// black-on-bright ink effect when src is drawn against a lighter dst.
func blendSubtractive(src, dst pixelfmt.Color) pixelfmt.Color {
	return pixelfmt.Color{
		R: subSat(dst.R, src.R),
		G: subSat(dst.G, src.G),
		B: subSat(dst.B, src.B),
		A: subSat(dst.A, src.A),
	}
}

func blendScreenColor(src, dst pixelfmt.Color) pixelfmt.Color {
	screen := func(s, d uint8) uint8 {
		return 255 - mulDiv255(255-s, 255-d)
	}
	return pixelfmt.Color{
		R: screen(src.R, dst.R),
		G: screen(src.G, dst.G),
		B: screen(src.B, dst.B),
		A: screen(src.A, dst.A),
	}
}

// subSat subtracts b from a, saturating at 0.
func subSat(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

func blendReplace(src, dst pixelfmt.Color) pixelfmt.Color {
	return src
}
