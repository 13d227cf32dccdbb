package gg

import "github.com/gogpu/swgl/internal/pixelfmt"

// Color is the internal working color: four 8-bit unsigned channels,
// re-exporting internal/pixelfmt.Color so the pixel format registry and
// the root package share one representation with no conversion at the
// package boundary.
type Color = pixelfmt.Color

// Color3 builds an opaque Color from 8-bit channels.
func Color3(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Color4 builds a Color from 8-bit channels.
func Color4(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// colorToFloat4 converts a Color to the normalized [0,1] representation
// used throughout the clip/raster/light pipeline.
func colorToFloat4(c Color) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// float4ToColor converts a normalized [0,1] color back to 8-bit channels,
// clamping out-of-range components.
func float4ToColor(f [4]float32) Color {
	return Color{
		R: clampToByte(f[0]),
		G: clampToByte(f[1]),
		B: clampToByte(f[2]),
		A: clampToByte(f[3]),
	}
}

func clampToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
