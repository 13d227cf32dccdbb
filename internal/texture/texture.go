// Package texture implements the 2D texture sampler: wrap-mode coordinate
// resolution plus nearest/bilinear filtering over an RGBA pixel store.
package texture

import "github.com/gogpu/swgl/internal/pixelfmt"

// WrapMode selects how out-of-[0,1) texture coordinates are resolved.
type WrapMode int

const (
	// Repeat wraps coordinates: u = u - floor(u).
	Repeat WrapMode = iota
	// Clamp clamps coordinates to the [0,1) texel range.
	Clamp
)

// Filter selects the sampling kernel.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

// Texture is a 2D RGBA pixel store sampled by (u, v) texture coordinates.
// For non-power-of-two dimensions, wrap resolution falls back to modulo
// arithmetic; power-of-two dimensions use a bitmask, avoiding a division
// in the sampler's hot path.
type Texture struct {
	Width, Height int
	Pixels        []pixelfmt.Color // row-major, length Width*Height
	Wrap          WrapMode
	Filter        Filter

	isPOT  bool
	maskX  int
	maskY  int
}

// New allocates a texture of the given size, defaulting to repeat wrap and
// nearest filtering, matching spec's stated defaults.
func New(width, height int) *Texture {
	t := &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]pixelfmt.Color, width*height),
		Wrap:   Repeat,
		Filter: Nearest,
	}
	t.isPOT = isPowerOfTwo(width) && isPowerOfTwo(height)
	if t.isPOT {
		t.maskX = width - 1
		t.maskY = height - 1
	}
	return t
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// At returns the texel at integer pixel coordinates, resolving wrap mode.
func (t *Texture) At(x, y int) pixelfmt.Color {
	x = t.wrapCoord(x, t.Width, t.maskX)
	y = t.wrapCoord(y, t.Height, t.maskY)
	return t.Pixels[y*t.Width+x]
}

// Set writes the texel at integer pixel coordinates. Out-of-bounds
// coordinates are ignored.
func (t *Texture) Set(x, y int, c pixelfmt.Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

func (t *Texture) wrapCoord(v, size, mask int) int {
	switch t.Wrap {
	case Clamp:
		if v < 0 {
			return 0
		}
		if v >= size {
			return size - 1
		}
		return v
	default: // Repeat
		if t.isPOT {
			return v & mask
		}
		m := v % size
		if m < 0 {
			m += size
		}
		return m
	}
}

// Sample returns the filtered color at normalized coordinates (u, v).
// u and v are expected in [0,1) under Repeat wrap, but any real value is
// accepted: the coordinates are scaled to texel units and floored, and
// At/wrapCoord then wraps the integer texel coordinate, which under Repeat
// gives the same texel as u - floor(u); Clamp wrap instead clamps that
// texel coordinate to the edge.
func (t *Texture) Sample(u, v float32) pixelfmt.Color {
	if t.Width == 0 || t.Height == 0 {
		return pixelfmt.Color{}
	}

	switch t.Filter {
	case Bilinear:
		return t.sampleBilinear(u, v)
	default:
		return t.sampleNearest(u, v)
	}
}

func (t *Texture) sampleNearest(u, v float32) pixelfmt.Color {
	x := floorInt(u * float32(t.Width))
	y := floorInt(v * float32(t.Height))
	return t.At(x, y)
}

// sampleBilinear interpolates between the 4 texels surrounding (u, v),
// grounded on the teacher's SampleBilinear half-texel-center convention
// (fx = u*w - 0.5) adapted to operate on pixelfmt.Color instead of byte
// RGBA and to honor this package's wrap mode instead of always clamping.
func (t *Texture) sampleBilinear(u, v float32) pixelfmt.Color {
	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	x1 := x0 + 1
	y1 := y0 + 1

	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.At(x0, y0)
	c10 := t.At(x1, y0)
	c01 := t.At(x0, y1)
	c11 := t.At(x1, y1)

	return lerpColor2D(c00, c10, c01, c11, tx, ty)
}

func floorInt(v float32) int {
	i := int(v)
	if v < float32(i) {
		i--
	}
	return i
}

func lerpColor2D(c00, c10, c01, c11 pixelfmt.Color, tx, ty float32) pixelfmt.Color {
	top := lerpByteColor(c00, c10, tx)
	bot := lerpByteColor(c01, c11, tx)
	return lerpByteColor(top, bot, ty)
}

func lerpByteColor(a, b pixelfmt.Color, t float32) pixelfmt.Color {
	return pixelfmt.Color{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

func lerpByte(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}
