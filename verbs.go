package gg

import (
	"github.com/gogpu/swgl/internal/blend"
	"github.com/gogpu/swgl/internal/raster"
)

// PointSize sets the diameter, in pixels, Point-mode vertices are drawn
// at. Values <= 1 draw a single pixel.
func (c *Context) PointSize(size float32) {
	if size <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.pointSize = size
}

// LineWidth is accepted for API completeness but every line still draws
// as the 1-pixel Bresenham locus; see internal/raster.Line.
func (c *Context) LineWidth(width float32) {
	if width <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.lineWidth = width
}

// CullFace selects which winding Triangle-mode primitives discard while
// CullFaceState is enabled.
func (c *Context) CullFace(mode raster.CullMode) { c.cullFace = mode }

// ShadeModel selects flat or smooth (Gouraud-interpolated) per-fragment
// color when lighting is off or baked per-vertex.
func (c *Context) ShadeModel(mode raster.ShadeMode) { c.shadeMode = mode }

// DepthFunc selects the depth comparison predicate used while
// DepthTestState is enabled.
func (c *Context) DepthFunc(f blend.DepthFunc) {
	c.depthFuncMode = f
	c.depthPredicate = blend.LookupDepth(f)
}

// BlendFunc selects the blend function used while BlendState is enabled.
func (c *Context) BlendFunc(m blend.Mode) {
	c.blendMode = m
	c.blendFn = blend.Lookup(m)
}

// SetReflectionModel selects Blinn-Phong or Phong specular evaluation.
func (c *Context) SetReflectionModel(m ReflectionMode) { c.reflectionMode = m }

// SetShadingModel selects Gouraud (per-vertex) or per-fragment lighting.
func (c *Context) SetShadingModel(m ShadingModel) { c.shadingModel = m }

// SetRasterStrategy selects the triangle fill algorithm: the default
// edge-function-per-pixel method, or the scanline edge-walk kept for
// cross-checking it.
func (c *Context) SetRasterStrategy(m RasterStrategy) { c.rasterStrategy = m }
