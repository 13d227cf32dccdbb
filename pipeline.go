package gg

import (
	"image"

	gcolor "github.com/gogpu/swgl/internal/color"
	"github.com/gogpu/swgl/internal/light"
	"github.com/gogpu/swgl/internal/pfm"
	"github.com/gogpu/swgl/internal/texture"
)

// ClearColor latches the color Clear writes when ClearColorBit is set.
func (c *Context) ClearColor(col Color) { c.clearColor = col }

// ClearDepth latches the depth value Clear writes when ClearDepthBit is
// set.
func (c *Context) ClearDepth(d float32) { c.clearDepth = d }

// Clear fills the selected buffers in the bound framebuffer with the
// latched clear color/depth, forking by row once the framebuffer area
// passes ParallelClearThreshold.
func (c *Context) Clear(flags ClearFlags) {
	c.FB.Clear(flags, c.clearColor, c.clearDepth, c.ParallelClearThreshold)
}

// RasterPos3f latches the current raster position, used by DrawPixels as
// the destination origin.
func (c *Context) RasterPos3f(x, y, z float32) {
	obj := pfm.Vec4{x, y, z, 1}
	c.matrices.recompute(false)
	c.rasterPos = c.matrices.mvp.MulVec4(obj)
}

// PixelZoom sets the magnification DrawPixels applies along each axis.
func (c *Context) PixelZoom(x, y float32) { c.pixelZoomX, c.pixelZoomY = x, y }

// DrawPixels blits a caller-supplied RGBA8 image at the current raster
// position, scaled by the latched pixel zoom.
func (c *Context) DrawPixels(width, height int, pixels []byte) {
	if len(pixels) != width*height*4 {
		c.setError(InvalidValue)
		return
	}
	img := &image.NRGBA{Pix: pixels, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	halfW, halfH := c.viewport.Width*0.5, c.viewport.Height*0.5
	invW := float32(1)
	if c.rasterPos[3] != 0 {
		invW = 1 / c.rasterPos[3]
	}
	ndcX, ndcY := c.rasterPos[0]*invW, c.rasterPos[1]*invW
	dstX := int(c.viewport.X + (ndcX+1)*halfW)
	dstY := int(c.viewport.Y + (1-ndcY)*halfH)
	c.FB.blitZoomed(img, dstX, dstY, c.pixelZoomX, c.pixelZoomY)
}

// ReadPixels copies width*height RGBA8 pixels starting at (x, y) out of
// the framebuffer into dst, which must be at least width*height*4 bytes.
func (c *Context) ReadPixels(x, y, width, height int, dst []byte) {
	if len(dst) < width*height*4 {
		c.setError(InvalidValue)
		return
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := c.FB.GetPixel(x+col, y+row)
			i := (row*width + col) * 4
			dst[i], dst[i+1], dst[i+2], dst[i+3] = p.R, p.G, p.B, p.A
		}
	}
}

// BindTexture sets the texture TEXTURE_2D sampling draws against.
func (c *Context) BindTexture(t *texture.Texture) { c.tex = t }

// Lightfv sets one vector-valued light parameter on light index i,
// allocating the light (and linking it into the active list) on first
// use. i must be in [0, MaxLightStack).
func (c *Context) Lightfv(i int, param LightParam, v [4]float32) {
	if i < 0 || i >= MaxLightStack {
		c.setError(InvalidValue)
		return
	}
	if !c.lightActive[i] {
		c.lightActive[i] = true
		c.lights[i] = *light.NewLight()
		c.relinkLights()
	}
	lt := &c.lights[i]
	switch param {
	case LightPosition:
		lt.Position = pfm.Vec4{v[0], v[1], v[2], v[3]}
	case LightAmbient:
		lt.Ambient = gcolor.ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
	case LightDiffuse:
		lt.Diffuse = gcolor.ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
	case LightSpecular:
		lt.Specular = gcolor.ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
	case LightSpotDirection:
		lt.Direction = pfm.Vec3{v[0], v[1], v[2]}
	default:
		c.setError(InvalidEnum)
	}
}

// Lightf sets one scalar light parameter.
func (c *Context) Lightf(i int, param LightParam, val float32) {
	if i < 0 || i >= MaxLightStack || !c.lightActive[i] {
		c.setError(InvalidValue)
		return
	}
	lt := &c.lights[i]
	switch param {
	case LightConstantAttenuation:
		lt.Constant = val
	case LightLinearAttenuation:
		lt.Linear = val
	case LightQuadraticAttenuation:
		lt.Quadratic = val
	case LightSpotInnerCutoff:
		lt.InnerCutoff = val
	case LightSpotOuterCutoff:
		lt.OuterCutoff = val
	default:
		// Every light parameter that takes a scalar value is handled
		// above; reaching here with an out-of-range param used to report
		// STACK_OVERFLOW, which made no sense since no stack is involved.
		c.setError(InvalidValue)
	}
}

// relinkLights rebuilds the active-light list head from the lightActive
// flags, in index order.
func (c *Context) relinkLights() {
	var head *light.Light
	var tail *light.Light
	for i := 0; i < MaxLightStack; i++ {
		if !c.lightActive[i] {
			continue
		}
		c.lights[i].Next = nil
		if head == nil {
			head = &c.lights[i]
		} else {
			tail.Next = &c.lights[i]
		}
		tail = &c.lights[i]
	}
	c.lightHead = head
}

// Materialfv sets one vector-valued material parameter on the given face.
func (c *Context) Materialfv(face Face, param MaterialParam, v [4]float32) {
	mat := &c.materialFront
	if face == BackFace {
		mat = &c.materialBack
	}
	col := gcolor.ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
	switch param {
	case MaterialAmbient:
		mat.Ambient = col
	case MaterialDiffuse:
		mat.Diffuse = col
	case MaterialSpecular:
		mat.Specular = col
	case MaterialEmission:
		mat.Emission = col
	default:
		c.setError(InvalidEnum)
	}
}

// Materialf sets the shininess exponent on the given face.
func (c *Context) Materialf(face Face, param MaterialParam, val float32) {
	mat := &c.materialFront
	if face == BackFace {
		mat = &c.materialBack
	}
	if param != MaterialShininess {
		c.setError(InvalidEnum)
		return
	}
	mat.Shininess = val
}

// Fogi sets an integer-valued fog parameter (FOG_MODE only).
func (c *Context) Fogi(param FogParam, mode light.FogMode) {
	if param != FogModeParam {
		c.setError(InvalidEnum)
		return
	}
	c.fog.Mode = mode
}

// Fogf sets a scalar fog parameter. The FOG_DENSITY case assigns to
// fog.Density; an earlier revision of this entry point assigned density
// values into fog.Mode by mistake.
func (c *Context) Fogf(param FogParam, val float32) {
	switch param {
	case FogDensity:
		c.fog.Density = val
	case FogStart:
		c.fog.Start = val
	case FogEnd:
		c.fog.End = val
	default:
		c.setError(InvalidEnum)
	}
}

// Fogfv sets the fog color.
func (c *Context) Fogfv(param FogParam, v [4]float32) {
	if param != FogColor {
		c.setError(InvalidEnum)
		return
	}
	c.fog.Color = gcolor.ColorF32{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// LightParam names a light parameter accepted by Lightf/Lightfv.
type LightParam int

const (
	LightPosition LightParam = iota
	LightAmbient
	LightDiffuse
	LightSpecular
	LightSpotDirection
	LightConstantAttenuation
	LightLinearAttenuation
	LightQuadraticAttenuation
	LightSpotInnerCutoff
	LightSpotOuterCutoff
)

// MaterialParam names a material parameter accepted by Materialf/Materialfv.
type MaterialParam int

const (
	MaterialAmbient MaterialParam = iota
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
	MaterialShininess
)

// Face selects the front or back material for Material*.
type Face int

const (
	FrontFace Face = iota
	BackFace
)

// FogParam names a fog parameter accepted by Fogi/Fogf/Fogfv.
type FogParam int

const (
	FogModeParam FogParam = iota
	FogDensity
	FogStart
	FogEnd
	FogColor
)
