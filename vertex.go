package gg

import (
	"github.com/gogpu/swgl/internal/clip"
	gcolor "github.com/gogpu/swgl/internal/color"
	"github.com/gogpu/swgl/internal/light"
	"github.com/gogpu/swgl/internal/pfm"
)

// buildVertex converts an object-space position plus the context's latched
// per-vertex state into the clip package's working Vertex: it applies the
// model matrix to get world position (for lighting), the full mvp to get
// clip position, and the normal matrix to get the world-space normal.
// Under Gouraud shading the lighting equation is evaluated here, once per
// vertex; under per-fragment shading the unlit color and the world
// position/normal are carried through for the rasterizer's shader
// callback to light later.
func (c *Context) buildVertex(obj pfm.Vec4) clip.Vertex {
	objPoint := pfm.Vec3{obj[0], obj[1], obj[2]}
	worldPos := c.matrices.modelTop().MulVec3Point(objPoint)
	clipPos := c.matrices.mvp.MulVec4(obj)

	worldNormal := c.currentNormal
	if c.stateBits&NormalizeState != 0 || c.stateBits&LightingState != 0 {
		worldNormal = c.matrices.normalMatrix.MulVec3Dir(c.currentNormal).Normalize()
	}

	vtxColor := c.currentColor
	if c.stateBits&LightingState != 0 && c.shadingModel == GouraudShading {
		lit := c.evaluateLighting(worldPos, worldNormal, colorFromFloat4(vtxColor))
		vtxColor = [4]float32{lit.R, lit.G, lit.B, lit.A}
	}

	return clip.Vertex{
		Pos:      clipPos,
		Color:    vtxColor,
		Normal:   worldNormal,
		TexCoord: c.currentTexCoord,
		WorldPos: worldPos,
	}
}

func colorFromFloat4(c [4]float32) gcolor.ColorF32 {
	return gcolor.ColorF32{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// evaluateLighting runs the active-light-list equation from
// internal/light against the context's current material and light state.
func (c *Context) evaluateLighting(worldPos, worldNormal pfm.Vec3, texel gcolor.ColorF32) gcolor.ColorF32 {
	model := light.BlinnPhong
	if c.reflectionMode == PhongReflection {
		model = light.Phong
	}
	return light.Evaluate(c.lightHead, c.materialFront, texel, worldPos, worldNormal, c.eyeWorldPos, model)
}
