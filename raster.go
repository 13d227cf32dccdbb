package gg

import (
	"github.com/gogpu/swgl/internal/clip"
	gcolor "github.com/gogpu/swgl/internal/color"
	"github.com/gogpu/swgl/internal/light"
	"github.com/gogpu/swgl/internal/parallel"
	"github.com/gogpu/swgl/internal/pfm"
	"github.com/gogpu/swgl/internal/raster"
)

// rasterizeTriangle clips the triangle against the view frustum, projects
// the survivors into the viewport, and hands each to internal/raster,
// forking the bounding box by row once its row count times the viewport
// width exceeds ParallelRasterThreshold. Face culling applies only while
// CullFaceState is enabled.
func (c *Context) rasterizeTriangle(v0, v1, v2 clip.Vertex) {
	poly := clip.Clip([]clip.Vertex{v0, v1, v2}, ClipEpsilon, c.viewport)
	if len(poly) < 3 {
		return
	}
	cull := c.cullFace
	if c.stateBits&CullFaceState == 0 {
		cull = raster.CullNone
	}
	for i := 1; i+1 < len(poly); i++ {
		if c.rasterStrategy == ScanlineFill {
			raster.FillScanline(poly[0], poly[i], poly[i+1], cull, c.shadeMode, c.depthTest, c.shade, c.blendPixel)
			continue
		}
		raster.TriangleParallel(poly[0], poly[i], poly[i+1], cull, c.shadeMode, c.depthTest, c.shade, c.blendPixel, c.forkTriangleRows)
	}
}

// forkTriangleRows adapts internal/parallel.ForEachRow into
// raster.RowForker, forking only once n*viewport-width work exceeds
// ParallelRasterThreshold; small triangles run inline.
func (c *Context) forkTriangleRows(n int, fn func(lo, hi int)) {
	threshold := c.ParallelRasterThreshold / max1(int(c.viewport.Width))
	parallel.ForEachRow(n, threshold, fn)
}

// rasterizeLine clips the segment against the view frustum and draws it.
func (c *Context) rasterizeLine(v0, v1 clip.Vertex) {
	ca, cb, ok := clip.ClipLine(v0, v1, ClipEpsilon)
	if !ok {
		return
	}
	proj := clip.PerspectiveDivide([]clip.Vertex{ca, cb}, c.viewport)
	raster.Line(proj[0], proj[1], c.depthTest, c.shade, c.blendPixel)
}

// rasterizePoint clips the lone vertex against the near plane and plots it.
func (c *Context) rasterizePoint(v clip.Vertex) {
	poly := clip.ClipW([]clip.Vertex{v}, ClipEpsilon)
	if len(poly) == 0 {
		return
	}
	proj := clip.PerspectiveDivide(poly, c.viewport)
	raster.Point(proj[0], c.pointSize, c.depthTest, c.shade, c.blendPixel)
}

// depthTest implements raster.DepthTest against the framebuffer's
// z-buffer: a passing fragment immediately claims its depth slot, so the
// rasterizer never has to call back into this package a second time per
// pixel. When DepthTestState is off every fragment passes and the
// z-buffer is left untouched.
func (c *Context) depthTest(x, y int, invZ float32) bool {
	if !c.FB.InBounds(x, y) {
		return false
	}
	if c.stateBits&DepthTestState == 0 {
		return true
	}
	stored := c.FB.ZBuffer[y*c.FB.Width+x]
	if !c.depthPredicate(invZ, stored) {
		return false
	}
	c.FB.ZBuffer[y*c.FB.Width+x] = invZ
	return true
}

// shade implements raster.Shader: it samples the bound texture (if
// TEXTURE_2D is enabled), evaluates per-fragment lighting when
// PerFragmentShading is active, and applies fog last.
func (c *Context) shade(f raster.Fragment) ([4]float32, bool) {
	col := f.Color

	if c.stateBits&Texture2DState != 0 && c.tex != nil {
		texel := c.tex.Sample(f.TexCoord[0], f.TexCoord[1])
		t := colorToFloat4(texel)
		col = [4]float32{col[0] * t[0], col[1] * t[1], col[2] * t[2], col[3] * t[3]}
	}

	if c.stateBits&LightingState != 0 && c.shadingModel == PerFragmentShading {
		n := pfm.Vec3{f.Normal[0], f.Normal[1], f.Normal[2]}.Normalize()
		p := pfm.Vec3{f.WorldPos[0], f.WorldPos[1], f.WorldPos[2]}
		lit := c.evaluateLighting(p, n, gcolor.ColorF32{R: col[0], G: col[1], B: col[2], A: col[3]})
		col = [4]float32{lit.R, lit.G, lit.B, lit.A}
	}

	worldPos := pfm.Vec3{f.WorldPos[0], f.WorldPos[1], f.WorldPos[2]}
	eyeZ := -c.matrices.view.MulVec3Point(worldPos)[2]
	litColor := gcolor.ColorF32{R: col[0], G: col[1], B: col[2], A: col[3]}
	fogged := c.applyFog(litColor, eyeZ)
	return [4]float32{fogged.R, fogged.G, fogged.B, fogged.A}, true
}

func (c *Context) applyFog(col gcolor.ColorF32, eyeZ float32) gcolor.ColorF32 {
	if c.fog.Color.A == 0 {
		return col
	}
	return light.Apply(col, eyeZ, c.fog)
}

// blendPixel implements raster.Blend: it converts the shaded float color
// to the framebuffer's 8-bit working representation, blends it against
// the destination when BlendState is on, and writes the color. The
// z-buffer write already happened in depthTest.
func (c *Context) blendPixel(x, y int, src [4]float32) {
	s := float4ToColor(src)
	if c.stateBits&BlendState != 0 {
		dst := c.FB.GetPixel(x, y)
		s = c.blendFn(s, dst)
	}
	c.FB.SetPixel(x, y, s)
}
