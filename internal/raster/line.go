package raster

import "github.com/gogpu/swgl/internal/clip"

// Line rasterizes a line segment with a DDA walk along its major axis,
// lerping depth, color and the remaining attributes per step.
// line_width greater than 1 pixel is not implemented: every line is
// drawn as the 1-pixel Bresenham locus, per spec.
func Line(v0, v1 clip.Projected, depthTest DepthTest, shader Shader, blendFn Blend) {
	dx := v1.Pos[0] - v0.Pos[0]
	dy := v1.Pos[1] - v0.Pos[1]

	steps := int(maxf(absf(dx), absf(dy)))
	if steps == 0 {
		plotLinePoint(v0, depthTest, shader, blendFn)
		return
	}

	invSteps := 1 / float32(steps)
	for i := 0; i <= steps; i++ {
		t := float32(i) * invSteps
		plotLinePoint(lerpProjected(v0, v1, t), depthTest, shader, blendFn)
	}
}

func lerpProjected(a, b clip.Projected, t float32) clip.Projected {
	var out clip.Projected
	for i := range out.Pos {
		out.Pos[i] = a.Pos[i] + (b.Pos[i]-a.Pos[i])*t
	}
	for i := range out.Color {
		out.Color[i] = a.Color[i] + (b.Color[i]-a.Color[i])*t
	}
	for i := range out.Normal {
		out.Normal[i] = a.Normal[i] + (b.Normal[i]-a.Normal[i])*t
	}
	for i := range out.TexCoord {
		out.TexCoord[i] = a.TexCoord[i] + (b.TexCoord[i]-a.TexCoord[i])*t
	}
	for i := range out.WorldPos {
		out.WorldPos[i] = a.WorldPos[i] + (b.WorldPos[i]-a.WorldPos[i])*t
	}
	return out
}

func plotLinePoint(v clip.Projected, depthTest DepthTest, shader Shader, blendFn Blend) {
	x, y := int(v.Pos[0]), int(v.Pos[1])
	invZ := v.Pos[2]

	if depthTest != nil && !depthTest(x, y, invZ) {
		return
	}

	frag := Fragment{X: x, Y: y, InvZ: invZ, Color: v.Color, Normal: v.Normal, TexCoord: v.TexCoord, WorldPos: v.WorldPos}
	color := frag.Color
	if shader != nil {
		var ok bool
		color, ok = shader(frag)
		if !ok {
			return
		}
	}
	if blendFn != nil {
		blendFn(x, y, color)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
