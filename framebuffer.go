package gg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	ximagedraw "golang.org/x/image/draw"

	"github.com/gogpu/swgl/internal/parallel"
	"github.com/gogpu/swgl/internal/pixelfmt"
)

// ClearFlags selects which buffers a Clear call touches.
type ClearFlags uint8

const (
	ClearColorBit ClearFlags = 1 << iota
	ClearDepthBit
)

// Framebuffer is the caller-owned color buffer plus a context-owned
// z-buffer. Its byte layout is never reinterpreted by this package beyond
// what Format/Type declare: reads and writes always go through the
// format's bound getter/setter, so Pixmap-style image.Image compliance
// (kept below as an auxiliary convenience, not the core representation)
// never has to special-case packed or float layouts.
type Framebuffer struct {
	Width, Height int
	Pixels        []byte
	Format        pixelfmt.Format
	Type          pixelfmt.DataType
	ZBuffer       []float32

	getter        pixelfmt.Getter
	setter        pixelfmt.Setter
	bytesPerPixel int

	aux []byte
}

// NewFramebuffer allocates a Framebuffer with an owned pixel buffer and
// z-buffer, both sized for width*height. Returns a plain Go error (not a
// sticky ErrorCode) per this module's convention that non-immediate-mode
// constructors use ordinary Go error handling.
func NewFramebuffer(width, height int, format pixelfmt.Format, dtype pixelfmt.DataType) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gg: invalid framebuffer dimensions %dx%d", width, height)
	}
	get, set, bpp, ok := pixelfmt.Lookup(format, dtype)
	if !ok {
		return nil, fmt.Errorf("gg: unsupported pixel format/type combination %v/%v", format, dtype)
	}
	fb := &Framebuffer{
		Width:         width,
		Height:        height,
		Pixels:        make([]byte, width*height*bpp),
		Format:        format,
		Type:          dtype,
		ZBuffer:       make([]float32, width*height),
		getter:        get,
		setter:        set,
		bytesPerPixel: bpp,
	}
	fb.clearDepthOnly(0, height, posInf)
	return fb, nil
}

// NewRGBA8Framebuffer is a convenience constructor for the common RGBA8
// case used throughout tests and examples.
func NewRGBA8Framebuffer(width, height int) (*Framebuffer, error) {
	return NewFramebuffer(width, height, pixelfmt.RGBA, pixelfmt.UnsignedByte)
}

// posInf is the default clear depth.
var posInf = float32(math.Inf(1))

func (fb *Framebuffer) offset(x, y int) int {
	return (y*fb.Width + x) * fb.bytesPerPixel
}

// InBounds reports whether (x, y) lies within the framebuffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// GetPixel reads the color at (x, y) via the bound getter.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.InBounds(x, y) {
		return Color{}
	}
	return fb.getter(fb.Pixels, fb.offset(x, y))
}

// SetPixel writes a color at (x, y) via the bound setter.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.setter(fb.Pixels, fb.offset(x, y), c)
}

// SetPixelDepth writes both the color and the z-buffer value at (x, y).
func (fb *Framebuffer) SetPixelDepth(x, y int, c Color, z float32) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.setter(fb.Pixels, fb.offset(x, y), c)
	fb.ZBuffer[y*fb.Width+x] = z
}

func (fb *Framebuffer) clearDepthOnly(rowLo, rowHi int, depth float32) {
	for y := rowLo; y < rowHi; y++ {
		base := y * fb.Width
		for x := 0; x < fb.Width; x++ {
			fb.ZBuffer[base+x] = depth
		}
	}
}

// Clear fills the selected buffers. Row work is forked across goroutines
// via internal/parallel.ForEachRow once the framebuffer area exceeds
// threshold, matching spec's clear-parallelization contract.
func (fb *Framebuffer) Clear(flags ClearFlags, color Color, depth float32, threshold int) {
	area := fb.Width * fb.Height
	parallelThreshold := threshold
	if area < parallelThreshold {
		parallelThreshold = area + 1 // forces the inline path below threshold
	}

	parallel.ForEachRow(fb.Height, parallelThreshold/max1(fb.Width), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < fb.Width; x++ {
				if flags&ClearColorBit != 0 {
					fb.setter(fb.Pixels, fb.offset(x, y), color)
				}
				if flags&ClearDepthBit != 0 {
					fb.ZBuffer[y*fb.Width+x] = depth
				}
			}
		}
	})
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// SetAuxBuffer installs an auxiliary pixel buffer of identical layout,
// enabling SwapBuffers.
func (fb *Framebuffer) SetAuxBuffer(buf []byte) error {
	if len(buf) != len(fb.Pixels) {
		return fmt.Errorf("gg: aux buffer length %d does not match framebuffer layout (%d)", len(buf), len(fb.Pixels))
	}
	fb.aux = buf
	return nil
}

// SwapBuffers exchanges Pixels and the auxiliary buffer. It is an error to
// call this before SetAuxBuffer.
func (fb *Framebuffer) SwapBuffers() error {
	if fb.aux == nil {
		return fmt.Errorf("gg: SwapBuffers called with no aux buffer set")
	}
	fb.Pixels, fb.aux = fb.aux, fb.Pixels
	return nil
}

// Rebind points the framebuffer at a new caller-owned pixel buffer. If the
// dimensions change, the z-buffer is reallocated and only the newly
// exposed region (rows/columns beyond the old extent) is cleared to
// clearDepth; pixels the caller already owns are left untouched.
func (fb *Framebuffer) Rebind(width, height int, pixels []byte, clearDepth float32) error {
	get, set, bpp, ok := pixelfmt.Lookup(fb.Format, fb.Type)
	if !ok {
		return fmt.Errorf("gg: framebuffer's own format/type became invalid")
	}
	if len(pixels) != width*height*bpp {
		return fmt.Errorf("gg: pixel buffer length %d does not match %dx%d at %d bytes/pixel", len(pixels), width, height, bpp)
	}

	oldW, oldH := fb.Width, fb.Height
	fb.Pixels = pixels
	fb.Width, fb.Height = width, height
	fb.getter, fb.setter, fb.bytesPerPixel = get, set, bpp

	if width == oldW && height == oldH {
		return nil
	}

	newZ := make([]float32, width*height)
	for i := range newZ {
		newZ[i] = clearDepth
	}
	for y := 0; y < oldH && y < height; y++ {
		copy(newZ[y*width:y*width+min(oldW, width)], fb.ZBuffer[y*oldW:y*oldW+min(oldW, width)])
	}
	fb.ZBuffer = newZ
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// frameImage adapts a Framebuffer to image.Image/draw.Image for SavePNG and
// DrawPixels' blit, following the teacher's Pixmap pattern.
type frameImage struct{ fb *Framebuffer }

var (
	_ image.Image = frameImage{}
	_ draw.Image  = frameImage{}
)

func (f frameImage) ColorModel() color.Model { return color.NRGBAModel }
func (f frameImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.fb.Width, f.fb.Height) }
func (f frameImage) At(x, y int) color.Color {
	c := f.fb.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
func (f frameImage) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	f.fb.SetPixel(x, y, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

// Image returns an image.Image/draw.Image view of the framebuffer, for
// saving with image/png or compositing with golang.org/x/image/draw.
func (fb *Framebuffer) Image() draw.Image { return frameImage{fb} }

// SavePNG writes the framebuffer to path as a PNG, via the Image adapter.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, fb.Image())
}

// blitZoomed draws src onto the framebuffer's Image view at (dstX, dstY)
// scaled by zoomX/zoomY, using golang.org/x/image/draw for the resampling
// DrawPixels' PixelZoom path needs when zoom is not 1:1. A 1:1 zoom
// bypasses resampling entirely and copies pixel-for-pixel.
func (fb *Framebuffer) blitZoomed(src image.Image, dstX, dstY int, zoomX, zoomY float32) {
	sb := src.Bounds()
	if zoomX == 1 && zoomY == 1 {
		ximagedraw.Draw(fb.Image(), image.Rect(dstX, dstY, dstX+sb.Dx(), dstY+sb.Dy()), src, sb.Min, draw.Over)
		return
	}
	dw := int(float32(sb.Dx()) * zoomX)
	dh := int(float32(sb.Dy()) * zoomY)
	if dw <= 0 || dh <= 0 {
		return
	}
	dst := image.Rect(dstX, dstY, dstX+dw, dstY+dh)
	ximagedraw.BiLinear.Scale(fb.Image(), dst, src, sb, draw.Over, nil)
}
